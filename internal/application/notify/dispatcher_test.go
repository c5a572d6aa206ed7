package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/internal/application/notify"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

const ops = "support@voipservices.fr"

type envoi struct {
	To      string
	Subject string
	Body    string
}

type spy struct {
	envois []envoi
	fail   bool
}

func (s *spy) Send(to, subject, body string) error {
	if s.fail {
		return errors.New("smtp en panne")
	}
	s.envois = append(s.envois, envoi{To: to, Subject: subject, Body: body})
	return nil
}

func destinataires(s *spy) []string {
	var out []string
	for _, e := range s.envois {
		out = append(out, e.To)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Politique de destinataires
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_PolitiqueDeDestinataires(t *testing.T) {
	cas := []struct {
		nom      string
		ev       notify.Event
		attendus []string
	}{
		{
			nom:      "création avec demandeur connu",
			ev:       notify.Event{Kind: notify.KindCreated, DemandeurEmail: "dem@acme.fr"},
			attendus: []string{ops, "dem@acme.fr"},
		},
		{
			nom:      "création sans demandeur joignable",
			ev:       notify.Event{Kind: notify.KindCreated},
			attendus: []string{ops},
		},
		{
			nom:      "commentaire d'agent",
			ev:       notify.Event{Kind: notify.KindCommentAdded, ActorRole: jwt.RoleAgent, DemandeurEmail: "dem@acme.fr"},
			attendus: []string{ops, "dem@acme.fr"},
		},
		{
			nom:      "commentaire de demandeur",
			ev:       notify.Event{Kind: notify.KindCommentAdded, ActorRole: jwt.RoleDemandeur, DemandeurEmail: "dem@acme.fr"},
			attendus: []string{ops},
		},
		{
			nom:      "changement de statut",
			ev:       notify.Event{Kind: notify.KindStatusChanged, DemandeurEmail: "dem@acme.fr"},
			attendus: []string{"dem@acme.fr"},
		},
		{
			nom:      "changement de statut sans demandeur",
			ev:       notify.Event{Kind: notify.KindStatusChanged},
			attendus: nil,
		},
		{
			nom:      "pièce jointe ajoutée",
			ev:       notify.Event{Kind: notify.KindFileAdded, DemandeurEmail: "dem@acme.fr"},
			attendus: []string{ops},
		},
		{
			nom:      "pièce jointe supprimée",
			ev:       notify.Event{Kind: notify.KindFileRemoved},
			attendus: []string{ops},
		},
		{
			nom:      "événement inconnu",
			ev:       notify.Event{Kind: notify.Kind("facture_emise")},
			attendus: nil,
		},
	}

	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			s := &spy{}
			d := notify.NewDispatcher(s, ops, true, logger.NewNop())
			d.Dispatch(c.ev)
			assert.Equal(t, c.attendus, destinataires(s))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Contenu des messages
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_SujetEtCorps(t *testing.T) {
	s := &spy{}
	d := notify.NewDispatcher(s, ops, true, logger.NewNop())

	d.Dispatch(notify.Event{
		Kind:           notify.KindStatusChanged,
		EntityType:     "ticket",
		Numero:         "000042",
		Titre:          "Ligne coupée",
		OldStatus:      "nouveau",
		NewStatus:      "en_cours",
		DemandeurEmail: "dem@acme.fr",
	})
	require.Len(t, s.envois, 1)
	assert.Contains(t, s.envois[0].Subject, "Ticket")
	assert.Contains(t, s.envois[0].Subject, "000042")
	assert.Contains(t, s.envois[0].Subject, "en_cours")
	assert.Contains(t, s.envois[0].Body, "nouveau")
	assert.Contains(t, s.envois[0].Body, "en_cours")
}

func TestDispatch_MessageHTMLEchappe(t *testing.T) {
	s := &spy{}
	d := notify.NewDispatcher(s, ops, true, logger.NewNop())

	d.Dispatch(notify.Event{
		Kind:       notify.KindCommentAdded,
		EntityType: "portabilite",
		Numero:     "000007",
		ActorRole:  jwt.RoleDemandeur,
		ActorName:  "dem@acme.fr",
		Message:    "<script>alert(1)</script>",
	})
	require.Len(t, s.envois, 1)
	assert.NotContains(t, s.envois[0].Body, "<script>")
	assert.Contains(t, s.envois[0].Body, "&lt;script&gt;")
	assert.Contains(t, s.envois[0].Subject, "Portabilité")
}

// ──────────────────────────────────────────────────────────────────────────────
// Best-effort
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_EchecAvaleEtGardesNil(t *testing.T) {
	// Relais en panne: Dispatch ne panique pas et n'envoie rien.
	s := &spy{fail: true}
	d := notify.NewDispatcher(s, ops, true, logger.NewNop())
	d.Dispatch(notify.Event{Kind: notify.KindCreated, DemandeurEmail: "dem@acme.fr"})
	assert.Empty(t, s.envois)

	// Notifications désactivées par configuration.
	s = &spy{}
	d = notify.NewDispatcher(s, ops, false, logger.NewNop())
	d.Dispatch(notify.Event{Kind: notify.KindCreated, DemandeurEmail: "dem@acme.fr"})
	assert.Empty(t, s.envois)

	// Aucun transport configuré.
	d = notify.NewDispatcher(nil, ops, true, logger.NewNop())
	d.Dispatch(notify.Event{Kind: notify.KindCreated})

	// Dispatcher absent (démarrage partiel).
	var absent *notify.Dispatcher
	absent.Dispatch(notify.Event{Kind: notify.KindCreated})
}
