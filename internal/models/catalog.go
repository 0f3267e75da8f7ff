package models

// AIModel describes one selectable summarization model.
type AIModel struct {
	ID            string
	DisplayName   string
	ProviderName  string
	ContextWindow string
	IsPaid        bool
}

// KnownModels is the static catalog offered by the CLI. Any OpenRouter model
// ID is accepted at runtime; this list only drives the -models listing.
var KnownModels = []AIModel{
	{ID: "anthropic/claude-3.5-haiku", DisplayName: "Claude 3.5 Haiku", ProviderName: "Anthropic", ContextWindow: "200K"},
	{ID: "anthropic/claude-3.7-sonnet", DisplayName: "Claude 3.7 Sonnet", ProviderName: "Anthropic", ContextWindow: "200K", IsPaid: true},
	{ID: "deepseek/deepseek-r1:free", DisplayName: "DeepSeek R1 (Free)", ProviderName: "DeepSeek", ContextWindow: "164K"},
	{ID: "deepseek/deepseek-chat-v3-0324:free", DisplayName: "DeepSeek V3 0324", ProviderName: "DeepSeek", ContextWindow: "128K"},
	{ID: "meta-llama/llama-3.3-70b-instruct:free", DisplayName: "Llama 3.3 70B Instruct", ProviderName: "Meta", ContextWindow: "131K"},
	{ID: "google/gemini-2.0-flash-001", DisplayName: "Gemini Flash 2.0", ProviderName: "Google", ContextWindow: "2M", IsPaid: true},
	{ID: "mistralai/mistral-small-24b-instruct-2501", DisplayName: "Mistral Small 3", ProviderName: "Mistral AI", ContextWindow: "33K", IsPaid: true},
	{ID: "openai/gpt-4o-mini", DisplayName: "GPT-4o-mini", ProviderName: "OpenAI", ContextWindow: "128K", IsPaid: true},
	{ID: "gpt-3.5-turbo", DisplayName: "GPT-3.5 Turbo (Legacy)", ProviderName: "OpenAI", ContextWindow: "16K"},
}
