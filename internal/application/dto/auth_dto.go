package dto

// LoginRequest identification par email/mot de passe.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse utilisateur authentifié (agent ou demandeur) sans champ sensible.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Nom       string  `json:"nom"`
	Prenom    string  `json:"prenom"`
	Role      string  `json:"type"`
	SocieteID *string `json:"societe_id,omitempty"`
}

// LoginResponse jeton d'accès et utilisateur.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"` // toujours "bearer"
	User        UserResponse `json:"user"`
}
