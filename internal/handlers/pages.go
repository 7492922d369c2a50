package handlers

import (
	"context"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

// UserLister defines the interface that the admin dashboard needs for the
// users table.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// AllContentLister defines the interface that the admin dashboard needs for
// the content table.
type AllContentLister interface {
	ListAllContent(ctx context.Context) ([]models.ContentWithOwner, error)
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head><title>Tweet Studio</title></head>
<body>
<h1>Tweet Studio</h1>
<p>Generate AI-powered tweets with matching images.</p>
{{if .Username}}
<p>Signed in as <strong>{{.Username}}</strong>. <a href="/dashboard">Dashboard</a> | <a href="/logout">Logout</a></p>
{{else}}
<p><a href="/login">Login</a> | <a href="/register">Register</a></p>
{{end}}
</body>
</html>`))

var userDashboardTemplate = template.Must(template.New("user-dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>Dashboard — Tweet Studio</title></head>
<body>
<h1>Welcome, {{.Username}}</h1>
<p><a href="/">Home</a> | <a href="/logout">Logout</a></p>
<div id="generator">
<textarea id="prompt" placeholder="What should the tweet be about?"></textarea>
<button onclick="generate()">Generate Tweet</button>
</div>
<div id="content"></div>
<script>
async function generate() {
  const prompt = document.getElementById('prompt').value;
  const res = await fetch('/generate-tweet', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({prompt})
  });
  const data = await res.json();
  if (data.success) loadContent();
}
async function loadContent() {
  const res = await fetch('/api/user-content');
  const data = await res.json();
  if (!data.success) return;
  document.getElementById('content').innerHTML = data.content.map(c =>
    '<div class="item"><p>' + c.tweet + '</p>' +
    (c.image_url ? '<img src="' + c.image_url + '" width="200">' : '') +
    (c.is_posted ? '<em>posted</em>'
      : '<button onclick="postTweet(' + c.id + ')">Post</button>') +
    '</div>').join('');
}
async function postTweet(id) {
  await fetch('/post-tweet', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({content_id: id})
  });
  loadContent();
}
loadContent();
</script>
</body>
</html>`))

var adminDashboardTemplate = template.Must(template.New("admin-dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>Admin — Tweet Studio</title></head>
<body>
<h1>Admin Dashboard</h1>
<p><a href="/">Home</a> | <a href="/logout">Logout</a></p>
<h2>Users</h2>
<table border="1">
<tr><th>ID</th><th>Username</th><th>Email</th><th>Created</th></tr>
{{range .Users}}
<tr><td>{{.ID}}</td><td>{{.Username}}</td><td>{{.Email}}</td><td>{{.CreatedAt}}</td></tr>
{{end}}
</table>
<h2>Generated Content</h2>
<table border="1">
<tr><th>ID</th><th>Owner</th><th>Prompt</th><th>Tweet</th><th>Image</th><th>Posted</th><th>Created</th></tr>
{{range .Content}}
<tr>
<td>{{.ID}}</td>
<td>{{if .OwnerUsername}}{{.OwnerUsername}}{{else}}-{{end}}</td>
<td>{{.Prompt}}</td>
<td>{{.GeneratedTweet}}</td>
<td>{{if .ImageURL}}<img src="{{.ImageURL}}" width="100">{{else}}-{{end}}</td>
<td>{{.IsPosted}}</td>
<td>{{.CreatedAt}}</td>
</tr>
{{end}}
</table>
<div id="activity"></div>
<script>
const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
const ws = new WebSocket(proto + '//' + location.host + '/ws');
ws.onopen = () => ws.send(JSON.stringify({event: 'join_admin'}));
ws.onmessage = (msg) => {
  const e = JSON.parse(msg.data);
  const div = document.createElement('div');
  div.textContent = e.event + ': ' + JSON.stringify(e.data);
  document.getElementById('activity').prepend(div);
};
</script>
</body>
</html>`))

// NewHomeHandler returns an HTTP handler for the public home page.
// @Summary Home page
// @Tags pages
// @Produce html
// @Success 200 "Home page"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := struct{ Username string }{}
		if identity := middlewares.IdentityFromContext(r.Context()); identity != nil {
			data.Username = identity.Username
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := homeTemplate.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render home page", "err", err)
		}
	}
}

// NewDashboardHandler returns an HTTP handler that sends the caller to the
// dashboard matching their role.
// @Summary Dashboard dispatch
// @Tags pages
// @Success 302 "Redirect to role dashboard"
// @Router /dashboard [get]
func NewDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity != nil && identity.IsAdmin {
			http.Redirect(w, r, "/admin-dashboard", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/user-dashboard", http.StatusFound)
	}
}

// NewUserDashboardHandler returns an HTTP handler for the user dashboard.
// Admins are sent to the admin dashboard instead.
// @Summary User dashboard
// @Tags pages
// @Produce html
// @Success 200 "User dashboard page"
// @Router /user-dashboard [get]
func NewUserDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity != nil && identity.IsAdmin {
			http.Redirect(w, r, "/admin-dashboard", http.StatusFound)
			return
		}

		data := struct{ Username string }{}
		if identity != nil {
			data.Username = identity.Username
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := userDashboardTemplate.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render user dashboard", "err", err)
		}
	}
}

// NewAdminDashboardHandler returns an HTTP handler for the admin dashboard,
// listing every user and every piece of generated content.
// @Summary Admin dashboard
// @Tags pages
// @Produce html
// @Success 200 "Admin dashboard page"
// @Router /admin-dashboard [get]
func NewAdminDashboardHandler(users UserLister, content AllContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allUsers, err := users.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		allContent, err := content.ListAllContent(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list content", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		data := struct {
			Users   []models.UserDB
			Content []models.ContentWithOwner
		}{Users: allUsers, Content: allContent}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := adminDashboardTemplate.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render admin dashboard", "err", err)
		}
	}
}
