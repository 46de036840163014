package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/kartgate/internal/web/templates/layout"
)

// GameData is the data for the game page shown after login
type GameData struct {
	layout.PageData
	PlayerName string
}

// Game renders the game surface that replaces the login form
func Game(data GameData) templ.Component {
	return layout.Base(data.PageData, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1 id="game-title">`+templ.EscapeString(data.Title)+`</h1>`+
			`<p>Racing as <strong id="player">`+templ.EscapeString(data.PlayerName)+`</strong></p>`)
		return err
	}))
}
