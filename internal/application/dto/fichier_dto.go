package dto

import "time"

// CreateFichierRequest ajout d'une pièce jointe (contenu en base64).
type CreateFichierRequest struct {
	NomFichier    string `json:"nom_fichier"`
	TypeMime      string `json:"type_mime"`
	ContenuBase64 string `json:"contenu_base64"`
}

// FichierResponse représentation API d'une pièce jointe. Le contenu n'est
// renvoyé que sur le GET unitaire, jamais dans les listes.
type FichierResponse struct {
	ID            string    `json:"id"`
	ParentType    string    `json:"parent_type"`
	ParentID      string    `json:"parent_id"`
	NomFichier    string    `json:"nom_fichier"`
	TypeMime      string    `json:"type_mime"`
	Taille        int64     `json:"taille"`
	ContenuBase64 string    `json:"contenu_base64,omitempty"`
	UploadePar    string    `json:"uploade_par"`
	CreatedAt     time.Time `json:"created_at"`
}
