package docs

// @title           Ride Analytics API
// @version         1.0
// @description     Canned queries, a filtered dashboard and business insights over one ride booking dataset. The dashboard is also served over a WebSocket session.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
