package middleware

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

func newSessionApp() *fiber.App {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)
	app.Use(TrackSession)
	app.Get("/whoami", func(c fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	return app
}

func TestTrackSession_StableAcrossRequests(t *testing.T) {
	app := newSessionApp()

	resp, err := app.Test(mustRequest(t, "/whoami"))
	if err != nil {
		t.Fatalf("request 1 failed: %v", err)
	}
	first, _ := io.ReadAll(resp.Body)
	if len(first) == 0 {
		t.Fatal("request 1: empty session id")
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("request 1: session cookie was not issued")
	}

	req2 := mustRequest(t, "/whoami")
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("request 2 failed: %v", err)
	}
	second, _ := io.ReadAll(resp2.Body)

	if string(first) != string(second) {
		t.Errorf("session id changed: %q then %q", first, second)
	}
}

func TestTrackSession_DistinctBrowsers(t *testing.T) {
	app := newSessionApp()

	resp1, _ := app.Test(mustRequest(t, "/whoami"))
	id1, _ := io.ReadAll(resp1.Body)
	resp2, _ := app.Test(mustRequest(t, "/whoami"))
	id2, _ := io.ReadAll(resp2.Body)

	if string(id1) == string(id2) {
		t.Errorf("two cookie-less requests shared session id %q", id1)
	}
}

func TestSessionID_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("[" + SessionID(c) + "]")
	})

	resp, err := app.Test(mustRequest(t, "/"))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "[]" {
		t.Errorf("SessionID() = %s, want empty", body)
	}
}

func mustRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}
