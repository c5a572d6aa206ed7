package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
)

// JWTConfig configuration de génération des jetons.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// UseCase authentification par email/mot de passe. Les agents sont testés en
// premier, puis les demandeurs; le rôle embarqué dans le jeton en découle.
type UseCase struct {
	agentRepo     repository.AgentRepository
	demandeurRepo repository.DemandeurRepository
	jwtCfg        JWTConfig
}

// NewUseCase construit le cas d'usage d'authentification.
func NewUseCase(agentRepo repository.AgentRepository, demandeurRepo repository.DemandeurRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{agentRepo: agentRepo, demandeurRepo: demandeurRepo, jwtCfg: jwtCfg}
}

// Login vérifie les identifiants et retourne un jeton bearer de 24 h.
// Retourne domain.ErrUnauthorized sans distinguer email inconnu et mot de
// passe erroné.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	agent, err := uc.agentRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if agent != nil {
		if bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, agent.Email, agent.ID, jwt.RoleAgent, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User: dto.UserResponse{
				ID:     agent.ID,
				Email:  agent.Email,
				Nom:    agent.Nom,
				Prenom: agent.Prenom,
				Role:   jwt.RoleAgent,
			},
		}, nil
	}

	demandeur, err := uc.demandeurRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if demandeur == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(demandeur.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, demandeur.Email, demandeur.ID, jwt.RoleDemandeur, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserResponse{
			ID:        demandeur.ID,
			Email:     demandeur.Email,
			Nom:       demandeur.Nom,
			Prenom:    demandeur.Prenom,
			Role:      jwt.RoleDemandeur,
			SocieteID: demandeur.SocieteID,
		},
	}, nil
}
