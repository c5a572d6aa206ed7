package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
// Correspondance HTTP à la couche interface: Unauthorized -> 401, Forbidden -> 403,
// NotFound -> 404, Conflict et Validation -> 400.
var (
	ErrNotFound     = errors.New("ressource introuvable")
	ErrUnauthorized = errors.New("non authentifié")
	ErrForbidden    = errors.New("accès refusé")
	ErrConflict     = errors.New("conflit avec une ressource existante")
	ErrValidation   = errors.New("entrée invalide")

	ErrEmailExists       = errors.New("cet email est déjà utilisé")
	ErrSiretExists       = errors.New("ce SIRET est déjà utilisé")
	ErrDomaineExists     = errors.New("ce domaine est déjà utilisé")
	ErrSocieteHasMembers = errors.New("la société a encore des demandeurs associés")
	ErrSelfDeletion      = errors.New("un demandeur ne peut pas se supprimer lui-même")
)
