package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

const (
	// NotFoundTitle is the heading shown on a route miss
	NotFoundTitle = "404 - Page Not Found"
	// NotFoundMessage is the text shown below the heading
	NotFoundMessage = "Sorry, we couldn't find the page you were looking for."
)

// NotFoundPage displays a 404 error message
type NotFoundPage struct {
	app.Compo
}

// Render renders the 404 page
func (p *NotFoundPage) Render() app.UI {
	return app.Div().
		Class("not-found-page").
		Body(
			app.H1().
				Class("not-found-title").
				Text(NotFoundTitle),
			app.P().
				Class("not-found-message").
				Text(NotFoundMessage),
		)
}
