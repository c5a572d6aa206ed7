package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Rôles portés par les jetons.
const (
	RoleAgent     = "agent"
	RoleDemandeur = "demandeur"
)

// Identity est l'identité décodée d'un jeton, normalisée à la frontière:
// quel que soit le nom du claim de rôle dans le jeton, Role est le seul champ exposé.
type Identity struct {
	Email string
	ID    string
	Role  string
}

// Claims inclut les claims standards JWT plus les champs propres à l'application.
// Le rôle est émis sous "type"; les jetons historiques le portent sous
// "type_utilisateur"; Parse accepte les deux et ne propage que Identity.Role.
type Claims struct {
	jwt.RegisteredClaims
	UserID          string `json:"id"`
	Type            string `json:"type,omitempty"`
	TypeUtilisateur string `json:"type_utilisateur,omitempty"`
}

// role retourne le rôle quel que soit le claim qui le porte.
func (c *Claims) role() string {
	if c.Type != "" {
		return c.Type
	}
	return c.TypeUtilisateur
}

// Generate génère un jeton JWT signé (HS256) portant email, id et rôle, expirant après expHours.
func Generate(secret, email, id, role, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UserID: id,
		Type:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valide le jeton et retourne l'identité normalisée.
// Retourne une erreur si le jeton est invalide, expiré, de signature incorrecte
// ou sans claim de rôle.
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims invalides")
	}
	role := claims.role()
	if role == "" {
		return nil, fmt.Errorf("claim de rôle absent")
	}
	return &Identity{
		Email: claims.Subject,
		ID:    claims.UserID,
		Role:  role,
	}, nil
}
