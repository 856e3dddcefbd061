package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the application
type App struct {
	app.Compo
	Brand string
	path  string
}

// OnPreRender is called when the page is rendered on the server
func (a *App) OnPreRender(ctx app.Context) {
	a.onNav(ctx)
}

// OnNav is called every time the browser navigates to a new page
func (a *App) OnNav(ctx app.Context) {
	a.onNav(ctx)
}

func (a *App) onNav(ctx app.Context) {
	a.path = ctx.Page().URL().Path
	if _, ok := a.renderPage().(*NotFoundPage); ok {
		ctx.Page().SetTitle(NotFoundTitle)
	}
}

// Render renders the app
func (a *App) Render() app.UI {
	return a.renderPage()
}

// renderPage renders the current page based on the route
func (a *App) renderPage() app.UI {
	switch a.path {
	case "/":
		return &HomePage{Brand: a.Brand}
	default:
		return &NotFoundPage{}
	}
}
