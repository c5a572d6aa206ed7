package entity

import "time"

// Fichier est une pièce jointe d'un ticket, d'une portabilité ou d'une tâche
// de production. Le contenu est stocké inline en base64. Append-only, hors
// suppression.
type Fichier struct {
	ID            string
	ParentType    string
	ParentID      string
	NomFichier    string
	TypeMime      string
	Taille        int64
	ContenuBase64 string
	UploadePar    string // id de l'agent ou du demandeur
	CreatedAt     time.Time
}
