// Package models contains data types and constants for the CIT chat webhook.
package models

// Webhook endpoint used when no override is configured
const (
	EndpointWebhook = "https://webhook.weeego.com.br/webhook/cit"
)

// Identifier prefixes for the per-message user and session ids sent to the webhook
const (
	UserIDPrefix    = "web_user_"
	SessionIDPrefix = "session_"
)

// ReplyFieldResponse is the reply contract: the assistant text lives under "response".
const ReplyFieldResponse = "response"

// UI copy shared by the terminal and HTML surfaces
const (
	Greeting = "Olá! Sou o assistente virtual do Centro de Inovação Tecnológica de Tarumã. Como posso ajudá-lo hoje?"

	// FallbackReply replaces a reply whose field is absent or empty
	FallbackReply = "Nenhuma resposta válida recebida."

	InputPlaceholder = "Digite sua pergunta sobre nossos serviços..."

	BrandName     = "Centro de Inovação Tecnológica"
	ChatTitle     = "CIT | Tarumã"
	HeroSubtitle  = "Descubra todos os nossos serviços através de uma experiência interativa com inteligência artificial"
	HeroHint      = "Tire suas dúvidas sobre desenvolvimento, consultoria, incubação e treinamentos"
	StartLabel    = "Iniciar Conversa"
	BackLabel     = "Voltar ao Início"
	ChatHelp      = "Pergunte sobre nossos serviços: desenvolvimento de software, consultoria digital, incubação de startups, treinamentos em tecnologia e muito mais."
	FooterPrefix  = "Desenvolvido por"
	FooterCompany = "Galanta Indústria & Tecnologia"

	NoticeSendFailedTitle       = "Erro na conexão"
	NoticeSendFailedDescription = "Não foi possível enviar sua mensagem. Tente novamente."
)

// Features lists the badges shown on the hero screen
var Features = []string{
	"IA Avançada",
	"Respostas Instantâneas",
	"Interface Intuitiva",
}

// DefaultHeaders returns the headers sent with every webhook request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "cit-chat/1.0",
	}
}
