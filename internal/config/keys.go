package config

const (
	KeyClickUpAPIKey  = "clickup_api_key"
	KeyClickUpAPIURL  = "clickup_api_url"
	KeyClickUpTimeout = "clickup_http_timeout"
	KeyLogLevel       = "log_level"
	KeyMCPHTTPToken   = "mcp_http_token"
)
