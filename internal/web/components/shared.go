package components

import "strconv"

func itoa(n int) string {
	return strconv.Itoa(n)
}

// stylesheet is inlined so the server ships a single self-contained page
const stylesheet = `
:root { color-scheme: dark; --bg: #0b1020; --surface: #141b33; --border: #2a355c;
  --primary: #38bdf8; --secondary: #a78bfa; --accent: #22d3ee; --error: #f87171;
  --text: #e2e8f0; --dim: #94a3b8; --mute: #475569; }
* { box-sizing: border-box; }
body.page { margin: 0; min-height: 100vh; display: flex; flex-direction: column;
  background: radial-gradient(circle at top, #1e1b4b, var(--bg) 60%); color: var(--text);
  font-family: system-ui, -apple-system, "Segoe UI", sans-serif; }
.page-main { flex: 1; display: flex; align-items: center; justify-content: center; padding: 2rem 1rem; }
.hero { max-width: 48rem; text-align: center; }
.hero h1 { font-size: clamp(2rem, 5vw, 3.5rem); margin: 0 0 1rem;
  background: linear-gradient(90deg, var(--primary), var(--secondary)); -webkit-background-clip: text;
  background-clip: text; color: transparent; }
.hero p { color: var(--dim); font-size: 1.125rem; }
.badges { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: .5rem; justify-content: center; }
.badges li { background: var(--surface); border: 1px solid var(--border); border-radius: 999px;
  padding: .25rem .75rem; color: var(--secondary); font-size: .875rem; }
.btn { border: 0; border-radius: .75rem; padding: .75rem 1.5rem; font-size: 1rem; cursor: pointer;
  background: linear-gradient(90deg, var(--primary), var(--secondary)); color: var(--bg); font-weight: 600; }
.btn:disabled { opacity: .4; cursor: not-allowed; }
.btn-ghost { background: transparent; color: var(--accent); padding: .5rem 0; text-decoration: none; border: 0; font: inherit; cursor: pointer; }
.hint { color: var(--mute); font-size: .875rem; }
.chat { width: 100%; max-width: 48rem; display: flex; flex-direction: column; gap: 1rem; }
.chat-header { display: flex; align-items: center; justify-content: space-between; }
.chat-header h2 { margin: 0; color: var(--primary); }
.panel { background: var(--surface); border: 1px solid var(--border); border-radius: 1rem; padding: 1rem; }
.messages-scroll { max-height: 60vh; overflow-y: auto; display: flex; flex-direction: column-reverse; }
.messages { list-style: none; margin: 0; padding: 0; display: flex; flex-direction: column; gap: .75rem; }
.message { max-width: 80%; padding: .625rem .875rem; border-radius: .875rem; white-space: pre-wrap; }
.message time { display: block; margin-top: .25rem; font-size: .75rem; color: var(--mute); }
.message-user { align-self: flex-end; background: var(--secondary); color: var(--bg); }
.message-user time { color: var(--surface); }
.message-assistant { align-self: flex-start; background: var(--bg); border: 1px solid var(--border); }
.typing span { animation: blink 1.4s infinite both; font-size: 1.5rem; line-height: 1; }
.typing span:nth-child(2) { animation-delay: .2s; }
.typing span:nth-child(3) { animation-delay: .4s; }
@keyframes blink { 0%, 80%, 100% { opacity: .2; } 40% { opacity: 1; } }
.composer { display: flex; gap: .5rem; margin-top: 1rem; }
.composer input { flex: 1; border-radius: .75rem; border: 1px solid var(--border); background: var(--bg);
  color: var(--text); padding: .75rem; font-size: 1rem; }
.notice { border: 1px solid var(--border); border-radius: .75rem; padding: .75rem 1rem; display: flex;
  justify-content: space-between; gap: 1rem; background: var(--surface); }
.notice-destructive { border-color: var(--error); }
.notice strong { color: var(--error); display: block; }
.notice form { margin: 0; }
.footer { text-align: center; padding: 1.5rem; color: var(--dim); font-size: .875rem; }
.footer strong { color: var(--accent); }
`
