//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/drummonds/notfound/webapp"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// appName must match APP_NAME on the server so both sides render the same brand
var appName = "notfound"

func main() {
	// Register routes for the client-side app, unrouted paths fall back to NotFoundPage
	webapp.Routes(appName)

	// This main function is for the WASM build only
	// It initializes the go-app when running in the browser
	app.RunWhenOnBrowser()
}
