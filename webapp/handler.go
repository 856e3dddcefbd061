package webapp

import (
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Routes registers the go-app routes. It must run in both the server and the
// WASM binary so that both sides agree on what is routed. Every path goes to
// App, which picks NotFoundPage for anything it does not know.
func Routes(name string) {
	app.RouteWithRegexp("^/.*", func() app.Composer { return &App{Brand: name} })
}

// Handler returns an HTTP handler for the web app
func Handler(name string) http.Handler {
	Routes(name)
	app.RunWhenOnBrowser()

	// wasm_exec.js and app.wasm are served from the static directory by Echo
	return &app.Handler{
		Name:        name,
		Title:       name,
		Description: "Static site with a custom not found page",
		Styles: []string{
			StylesheetPath,
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}
