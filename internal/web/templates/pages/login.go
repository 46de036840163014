package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/kartgate/internal/web/templates/layout"
)

// LoginData is the data for the login page
type LoginData struct {
	layout.PageData
	Username string
	Message  string
}

// Login renders the login form: User and Pass fields, Register and Login
// buttons sharing one form, and the message label
func Login(data LoginData) templ.Component {
	if data.Title == "" {
		data.Title = "Simple Login"
	}
	return layout.Base(data.PageData, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<form id="login-form" method="post" action="/auth">`+
			`<label for="username">User:</label>`+
			`<input id="username" name="username" type="text" value="`+templ.EscapeString(data.Username)+`" autocomplete="username">`+
			`<label for="password">Pass:</label>`+
			`<input id="password" name="password" type="password" autocomplete="current-password">`+
			`<button type="submit" name="action" value="register">Register</button>`+
			`<button type="submit" name="action" value="login">Login</button>`+
			`</form>`+
			`<p id="message">`+templ.EscapeString(data.Message)+`</p>`)
		return err
	}))
}
