package webapp

import (
	"bytes"
	_ "embed"
	"html"
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// StylesheetPath is where the server exposes webapp.css
const StylesheetPath = "/webapp/webapp.css"

//go:embed webapp.css
var stylesheet []byte

// Stylesheet returns the embedded webapp.css
func Stylesheet() []byte {
	return stylesheet
}

var notFoundDocument = sync.OnceValue(func() []byte {
	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	b.WriteString("<title>" + html.EscapeString(NotFoundTitle) + "</title>\n")
	b.WriteString(`<link rel="stylesheet" href="` + StylesheetPath + `">` + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(app.HTMLString((&NotFoundPage{}).Render()))
	b.WriteString("\n</body>\n</html>\n")
	return b.Bytes()
})

// NotFoundDocument returns the standalone HTML page served when the server
// has no route for a request. The bytes are built once and shared, callers
// must not modify them.
func NotFoundDocument() []byte {
	return notFoundDocument()
}
