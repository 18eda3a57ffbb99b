package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Authentication endpoints
	endpointLogin = apiV1Prefix + "/auth/login"

	// Chat endpoints
	endpointChatStream = apiV1Prefix + "/chat/stream" // POST - SSE response

	// Conversation endpoints
	endpointConversations       = apiV1Prefix + "/conversations"             // GET - authenticated list
	endpointConversationByID    = apiV1Prefix + "/conversations/%s"          // DELETE
	endpointConversationHistory = apiV1Prefix + "/conversations/%s/messages" // GET
)
