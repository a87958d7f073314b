package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/galanta/cit/internal/chat"
	"github.com/galanta/cit/internal/models"
)

// ChatPaths holds the routes the chat screen links and posts to
type ChatPaths struct {
	Leave   string
	Send    string
	Dismiss string
	// Latest is the id of the anchor after the last message
	Latest string
}

// Chat renders the chat screen for one panel snapshot
func Chat(snap chat.Snapshot, paths ChatPaths) g.Node {
	var notice g.Node
	if snap.Notice != nil {
		notice = Notice(*snap.Notice, paths.Dismiss)
	}

	return Section(
		Class("chat"),
		ID("chat"),

		Div(
			Class("chat-header"),
			Form(
				Method("post"),
				Action(paths.Leave),
				Button(Type("submit"), Class("btn-ghost"), g.Text("← "+models.BackLabel)),
			),
			H2(g.Text(models.ChatTitle)),
		),

		notice,

		Div(
			Class("panel"),
			// The scroll box stacks in reverse, which keeps it pinned to its end
			Div(
				Class("messages-scroll"),
				Div(
					Ol(
						Class("messages"),
						ID("messages"),
						g.Map(snap.Messages, MessageItem),
						g.If(snap.Pending, Typing()),
					),
					Span(ID(paths.Latest)),
				),
			),
			Composer(paths.Send, snap.Pending),
		),

		P(Class("hint"), g.Text(models.ChatHelp)),
	)
}

// MessageItem renders one entry of the sequence
func MessageItem(m models.Message) g.Node {
	return Li(
		Class("message message-"+string(m.Role)),
		ID("message-"+m.ID),
		g.Attr("data-role", string(m.Role)),
		g.Text(m.Content),
		g.El("time",
			g.Attr("datetime", m.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00")),
			g.Text(m.DisplayTime()),
		),
	)
}

// Typing is the pending row shown while a reply is awaited
func Typing() g.Node {
	return Li(
		Class("message message-assistant typing"),
		ID("pending"),
		g.Attr("aria-label", "Aguardando resposta"),
		Span(g.Text(".")), Span(g.Text(".")), Span(g.Text(".")),
	)
}

// Composer is the input form. Input and button are disabled while pending.
func Composer(action string, pending bool) g.Node {
	return Form(
		Class("composer"),
		Method("post"),
		Action(action),
		Input(
			Type("text"),
			Name("message"),
			Placeholder(models.InputPlaceholder),
			AutoComplete("off"),
			g.If(!pending, AutoFocus()),
			g.If(pending, Disabled()),
		),
		Button(
			Type("submit"),
			Class("btn"),
			g.Attr("aria-label", "Enviar"),
			g.If(pending, Disabled()),
			g.Text("Enviar"),
		),
	)
}

// Notice renders the dismissible failure notification
func Notice(n chat.Notice, dismissAction string) g.Node {
	return Div(
		Class("notice notice-"+string(n.Variant)),
		g.Attr("role", "alert"),
		Div(
			Strong(g.Text(n.Title)),
			Span(g.Text(n.Description)),
		),
		Form(
			Method("post"),
			Action(dismissAction),
			Button(Type("submit"), Class("btn-ghost"), g.Attr("aria-label", "Fechar"), g.Text("×")),
		),
	)
}
