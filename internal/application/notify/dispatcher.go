package notify

import (
	"fmt"
	"html"

	"github.com/jrossignol/voip-backoffice/pkg/jwt"
	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

// Dispatcher applique la politique de destinataires et envoie les e-mails en
// best-effort: tout échec est journalisé puis avalé, jamais remonté à
// l'opération déclenchante. Dispatch ne retourne rien pour que les sites
// d'appel ne puissent pas en dépendre.
type Dispatcher struct {
	sender     Sender
	opsMailbox string
	enabled    bool
	log        *logger.Logger
}

// NewDispatcher construit le dispatcher. opsMailbox est la boîte support
// notifiée sur les créations, commentaires et événements fichier.
func NewDispatcher(sender Sender, opsMailbox string, enabled bool, log *logger.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, opsMailbox: opsMailbox, enabled: enabled, log: log}
}

// Dispatch sélectionne les destinataires selon le type d'événement et tente
// l'envoi. Politique:
//   - created: boîte support + demandeur si son e-mail est connu;
//   - commentAdded: boîte support; le demandeur uniquement quand l'auteur est
//     un agent (sens agent vers demandeur seulement);
//   - statusChanged: demandeur si connu, sinon rien;
//   - fileAdded / fileRemoved: boîte support.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil || !d.enabled || d.sender == nil {
		return
	}
	var recipients []string
	switch ev.Kind {
	case KindCreated:
		recipients = append(recipients, d.opsMailbox)
		if ev.DemandeurEmail != "" {
			recipients = append(recipients, ev.DemandeurEmail)
		}
	case KindCommentAdded:
		recipients = append(recipients, d.opsMailbox)
		if ev.ActorRole == jwt.RoleAgent && ev.DemandeurEmail != "" {
			recipients = append(recipients, ev.DemandeurEmail)
		}
	case KindStatusChanged:
		if ev.DemandeurEmail == "" {
			return
		}
		recipients = append(recipients, ev.DemandeurEmail)
	case KindFileAdded, KindFileRemoved:
		recipients = append(recipients, d.opsMailbox)
	default:
		return
	}

	subject, body := render(ev)
	for _, to := range recipients {
		if err := d.sender.Send(to, subject, body); err != nil {
			d.log.Warn().Err(err).
				Str("to", to).
				Str("kind", string(ev.Kind)).
				Str("entity", ev.EntityType).
				Str("numero", ev.Numero).
				Msg("envoi de notification échoué (ignoré)")
		}
	}
}

// render produit le sujet et le corps HTML du message selon l'événement.
func render(ev Event) (subject, body string) {
	label := entityLabel(ev.EntityType)
	switch ev.Kind {
	case KindCreated:
		subject = fmt.Sprintf("[%s #%s] Nouvelle demande : %s", label, ev.Numero, ev.Titre)
		body = fmt.Sprintf(
			"<h2>Nouvelle demande</h2><p>%s n°<strong>%s</strong> — %s</p><p>Créée par %s.</p>",
			label, ev.Numero, html.EscapeString(ev.Titre), html.EscapeString(ev.ActorName))
	case KindCommentAdded:
		subject = fmt.Sprintf("[%s #%s] Nouveau message", label, ev.Numero)
		body = fmt.Sprintf(
			"<h2>Nouveau message</h2><p>%s n°<strong>%s</strong></p><blockquote>%s</blockquote><p>— %s</p>",
			label, ev.Numero, html.EscapeString(ev.Message), html.EscapeString(ev.ActorName))
	case KindStatusChanged:
		subject = fmt.Sprintf("[%s #%s] Statut : %s", label, ev.Numero, ev.NewStatus)
		body = fmt.Sprintf(
			"<h2>Changement de statut</h2><p>%s n°<strong>%s</strong> — %s</p><p>Statut : <strong>%s</strong> → <strong>%s</strong></p>",
			label, ev.Numero, html.EscapeString(ev.Titre), html.EscapeString(ev.OldStatus), html.EscapeString(ev.NewStatus))
	case KindFileAdded:
		subject = fmt.Sprintf("[%s #%s] Pièce jointe ajoutée", label, ev.Numero)
		body = fmt.Sprintf("<p>%s n°<strong>%s</strong> : pièce jointe ajoutée par %s.</p>",
			label, ev.Numero, html.EscapeString(ev.ActorName))
	case KindFileRemoved:
		subject = fmt.Sprintf("[%s #%s] Pièce jointe supprimée", label, ev.Numero)
		body = fmt.Sprintf("<p>%s n°<strong>%s</strong> : pièce jointe supprimée par %s.</p>",
			label, ev.Numero, html.EscapeString(ev.ActorName))
	}
	return subject, body
}

func entityLabel(entityType string) string {
	switch entityType {
	case "ticket":
		return "Ticket"
	case "portabilite":
		return "Portabilité"
	case "production":
		return "Production"
	default:
		return entityType
	}
}
