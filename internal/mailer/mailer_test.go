package mailer

import (
	"context"
	"testing"

	"phishing-simulator-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct{}

func (stubSender) Send(context.Context, *Message) (string, error) { return "stub-id", nil }

func TestRender(t *testing.T) {
	click, pixel := TrackingURLs("https://track.example.com/", "tok-123")
	assert.Equal(t, "https://track.example.com/track/tok-123/click", click)
	assert.Equal(t, "https://track.example.com/track/tok-123/open", pixel)

	vars := Variables{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Department:  "Finance",
		TrackingURL: click,
		PixelURL:    pixel,
	}

	html := Render(`<p>Hi {{first_name}} ({{full_name}}, {{department}})</p><a href="{{tracking_url}}">Verify {{email}}</a>`, vars)
	assert.Contains(t, html, "Hi Jane (Jane Doe, Finance)")
	assert.Contains(t, html, `href="https://track.example.com/track/tok-123/click"`)
	assert.Contains(t, html, "Verify jane@example.com")
	assert.Contains(t, html, `<img src="https://track.example.com/track/tok-123/open"`)

	text := RenderText("Hello {{last_name}}", vars)
	assert.Equal(t, "Hello Doe", text)
}

func TestRenderWithoutPixel(t *testing.T) {
	html := Render("<p>{{first_name}}</p>", Variables{FirstName: "Sam"})
	assert.Equal(t, "<p>Sam</p>", html)
}

func TestRenderEscapesImportedValues(t *testing.T) {
	vars := Variables{FirstName: `<script>alert("x")</script>`, LastName: "O'Neil", Department: "R&D"}

	html := Render("<p>{{full_name}} / {{department}}</p>", vars)
	assert.Equal(t, "<p>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; O&#39;Neil / R&amp;D</p>", html)

	text := RenderText("{{last_name}} in {{department}}", vars)
	assert.Equal(t, "O'Neil in R&D", text)
}

func TestRouter(t *testing.T) {
	t.Run("smtp configuration wins", func(t *testing.T) {
		router := NewRouter(stubSender{})
		sender, err := router.SenderFor(&models.SMTPConfiguration{Host: "smtp.example.com", Port: 587})
		require.NoError(t, err)
		assert.IsType(t, &SMTPSender{}, sender)
	})

	t.Run("fallback without configuration", func(t *testing.T) {
		router := NewRouter(stubSender{})
		sender, err := router.SenderFor(nil)
		require.NoError(t, err)
		id, err := sender.Send(context.Background(), &Message{To: "x@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "stub-id", id)
	})

	t.Run("no sender at all", func(t *testing.T) {
		_, err := NewRouter(nil).SenderFor(nil)
		assert.ErrorIs(t, err, ErrNoSender)
	})
}

func TestSMTPClientOptions(t *testing.T) {
	sender := NewSMTPSender(&models.SMTPConfiguration{Host: "smtp.example.com", Port: 465, UseSSL: true, Username: "u", Password: "p"})
	assert.Len(t, sender.clientOptions(), 6)

	sender = NewSMTPSender(&models.SMTPConfiguration{Host: "smtp.example.com", Port: 25})
	assert.Len(t, sender.clientOptions(), 3)
}
