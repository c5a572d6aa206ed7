package notify

// Kind est le type d'événement notifiable.
type Kind string

const (
	KindCreated       Kind = "created"
	KindCommentAdded  Kind = "comment_added"
	KindStatusChanged Kind = "status_changed"
	KindFileAdded     Kind = "file_added"
	KindFileRemoved   Kind = "file_removed"
)

// Event décrit un événement métier à notifier par e-mail.
// DemandeurEmail est l'adresse du demandeur de référence quand elle est connue;
// vide sinon (certaines ressources restent sans demandeur joignable).
type Event struct {
	Kind           Kind
	EntityType     string // ticket | portabilite | production
	Numero         string
	Titre          string
	OldStatus      string // renseigné pour KindStatusChanged
	NewStatus      string
	ActorRole      string // agent | demandeur
	ActorName      string
	DemandeurEmail string
	Message        string // extrait du commentaire pour KindCommentAdded
}

// Sender est le port sortant vers le fournisseur d'e-mails transactionnels.
// L'implémentation de production passe par SMTP; celle des tests enregistre
// les appels.
type Sender interface {
	Send(to, subject, htmlBody string) error
}
