package handler

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const flashSessionName = "assessment_flash"

// flashMessage is a one-shot notification rendered on the next HTML page.
type flashMessage struct {
	Level string // bootstrap contextual class: success, info, danger
	Text  string
}

func setFlash(c echo.Context, level, text string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.Values["level"] = level
	sess.Values["text"] = text
	_ = sess.Save(c.Request(), c.Response())
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c echo.Context) *flashMessage {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return nil
	}
	text, _ := sess.Values["text"].(string)
	if text == "" {
		return nil
	}
	level, _ := sess.Values["level"].(string)

	delete(sess.Values, "level")
	delete(sess.Values, "text")
	_ = sess.Save(c.Request(), c.Response())

	return &flashMessage{Level: level, Text: text}
}
