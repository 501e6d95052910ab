package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-secret"

func setupApp() *fiber.App {
	a := fiber.New()
	NewHandler("admin", "hunter2", testSecret).RegisterPublicRoutes(a)
	a.Use(Protect(testSecret))
	a.Get("/api/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return a
}

func doLogin(t *testing.T, a *fiber.App, username, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := a.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	a := setupApp()

	res := doLogin(t, a, "admin", "hunter2")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var body map[string]any
	json.NewDecoder(res.Body).Decode(&body)
	if body["success"] != true {
		t.Fatalf("unexpected body: %v", body)
	}

	ck := sessionCookie(res)
	if ck == nil || ck.Value == "" {
		t.Fatal("admin-auth cookie not set")
	}
	if !ck.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	a := setupApp()

	res := doLogin(t, a, "admin", "wrong")
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}

	var body map[string]any
	json.NewDecoder(res.Body).Decode(&body)
	if body["success"] != false || body["message"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", body)
	}
	if sessionCookie(res) != nil {
		t.Error("no cookie should be set on failed login")
	}
}

func TestProtectedRoute_RequiresCookie(t *testing.T) {
	a := setupApp()

	res, err := a.Test(httptest.NewRequest("GET", "/api/dashboard", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}
}

func TestProtectedRoute_AcceptsIssuedCookie(t *testing.T) {
	a := setupApp()

	ck := sessionCookie(doLogin(t, a, "admin", "hunter2"))
	if ck == nil {
		t.Fatal("login did not set cookie")
	}

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	req.AddCookie(ck)
	res, err := a.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
}

func TestProtectedRoute_RejectsTamperedCookie(t *testing.T) {
	a := setupApp()

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "true"})
	res, err := a.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for forged boolean cookie, got %d", res.StatusCode)
	}
}
