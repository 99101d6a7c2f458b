package docsite

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func requestSite(c echo.Context) (SiteConfiguration, error) {
	site, ok := FromContext(c.Request().Context())
	if !ok {
		return SiteConfiguration{}, ErrNotLoaded
	}
	return site, nil
}

func handleClientConfig(c echo.Context) error {
	site, err := requestSite(c)
	if err != nil {
		return err
	}
	b, err := ClientJSON(site)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, b)
}

func handleHead(c echo.Context) error {
	site, err := requestSite(c)
	if err != nil {
		return err
	}
	return renderFragment(c, HeadTags(site))
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// renderFragment buffers cmp and writes it as text/html. A failed render
// commits nothing.
func renderFragment(c echo.Context, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = http.StatusText(code)
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"error": msg})
}
