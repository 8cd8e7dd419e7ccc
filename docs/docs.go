// Package docs Cohort Site API.
//
// Documentation of the caregiver cohort site backend.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//     - application/x-www-form-urlencoded
//
//     Produces:
//     - application/json
//     - text/html
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/cohort-site/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/messages messages listMessages
// Lists every message on the board, oldest first.
// responses:
//   200: messagesResponse

// All stored messages
// swagger:response messagesResponse
type messagesResponseWrapper struct {
	// in:body
	Body []models.Message
}

// swagger:route POST /api/messages messages createMessage
// Posts a message to the board. author defaults to Anonymous.
// responses:
//   201: createMessageResponse
//   400: errorResponse
//   500: errorResponse

// The saved message
// swagger:response createMessageResponse
type createMessageResponseWrapper struct {
	// in:body
	Body models.CreateMessageResponse
}

// swagger:parameters createMessage
type createMessageParams struct {
	// in:body
	Body struct {
		Author  string `json:"author"`
		Message string `json:"message"`
	}
}

// swagger:route POST /contact contact sendContact
// Relays the contact form to the operator and sends the visitor an auto-reply.
// Responds with an HTML thank-you page.
// responses:
//   200: description: thank-you page
//   400: description: invalid email or missing message
//   500: description: mail could not be sent

// swagger:parameters sendContact
type contactParams struct {
	// in:body
	Body models.ContactRequest
}

// swagger:route POST /quiz quiz submitQuiz
// Scores the cohort quiz, logs the answers and responds with an HTML result page.
// responses:
//   200: description: result page
//   500: description: response could not be saved

// swagger:parameters submitQuiz
type quizParams struct {
	// in:body
	Body models.QuizResponse
}

// swagger:route GET /ws live viewerCount
// Upgrades to a websocket that receives a userCount message whenever a viewer joins or leaves.
// responses:
//   101: userCountMessage

// Pushed over the websocket
// swagger:response userCountMessage
type userCountMessageWrapper struct {
	// in:body
	Body models.UserCount
}

// Error body for JSON routes
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorResponse
}
