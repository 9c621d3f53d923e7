// Package chat implements the portal's rule-based grievance assistant.
//
// The assistant answers a fixed set of intents (track a complaint, file a
// grievance, welfare schemes, small talk) with canned responses. Tracking is
// the only rule that touches storage: a complaint id in the message is
// looked up and its status and department reported.
package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"nivaran/internal/complaint"
	apperrors "nivaran/internal/errors"
)

// FallbackReply is what the presentation layer shows when the chat call
// itself fails. Fixed text, no retry.
const FallbackReply = "Sorry, I'm having trouble connecting right now."

// defaultReply is the assistant's answer for unrecognized messages.
const defaultReply = "I didn't understand that. You can ask me to 'track complaint [ID]', 'file a grievance', or ask about 'welfare schemes'."

var idPattern = regexp.MustCompile(`\d+`)

// Responder answers assistant messages.
type Responder struct {
	store *complaint.Store
}

// NewResponder creates a responder over the given store.
func NewResponder(store *complaint.Store) *Responder {
	return &Responder{store: store}
}

// Respond returns the assistant's reply for one user message.
//
// Rules are checked in a fixed order and the first hit wins; a message
// matching nothing gets the default help line.
func (r *Responder) Respond(message string) string {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "track") || strings.Contains(msg, "status"):
		return r.trackReply(msg)

	case strings.Contains(msg, "file") || strings.Contains(msg, "complaint") || strings.Contains(msg, "grievance"):
		return "You can file a grievance by visiting the Dashboard. Click the 'File a Grievance' button to get started."

	case strings.Contains(msg, "welfare") || strings.Contains(msg, "scheme"):
		return "We have several welfare schemes active: 1. PM Awas Yojana (Housing)\n2. Ayushman Bharat (Health)\n3. PM Kisan (Farmers). Visit the Welfare page for more."

	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi") || strings.Contains(msg, "hey"):
		return "Hello! 👋 I am your AI assistant. How can I help you today?"

	case strings.Contains(msg, "thank") || strings.Contains(msg, "thx"):
		return "You're welcome! 😊 Happy to help."

	case strings.Contains(msg, "ok") || strings.Contains(msg, "okay") || strings.Contains(msg, "k ") || msg == "k":
		return "Okay! 👍 Is there anything else?"

	case strings.Contains(msg, "bye") || strings.Contains(msg, "goodbye"):
		return "Goodbye! 👋 Have a great day!"
	}

	return defaultReply
}

// trackReply answers a tracking request, extracting the complaint id from
// the message when present.
func (r *Responder) trackReply(msg string) string {
	match := idPattern.FindString(msg)
	if match == "" {
		return "Please provide your Complaint ID so I can track it for you."
	}

	id, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return "Please provide your Complaint ID so I can track it for you."
	}

	rec, err := r.store.ByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return fmt.Sprintf("I couldn't find a complaint with ID #%d.", id)
		}
		return FallbackReply
	}

	return fmt.Sprintf("Complaint #%d is currently '%s'. It is handled by the %s department.",
		id, rec.Status, rec.Sector)
}
