package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePage is the landing page served at "/"
type HomePage struct {
	app.Compo
	Brand string
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	return app.Div().
		Class("home-page").
		Body(
			&NavBar{Brand: h.Brand},
			app.P().Text("Every path other than this one shows the 404 page."),
		)
}
