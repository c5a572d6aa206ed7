package repository

import "context"

// DashboardStats est l'agrégation de comptes par statut servie par le tableau de bord.
type DashboardStats struct {
	TicketsParStatut      map[string]int
	PortabilitesParStatut map[string]int
	ProductionsParStatut  map[string]int
}

// DashboardRepository définit le port de lecture des agrégations du tableau de bord.
type DashboardRepository interface {
	CountsParStatut(ctx context.Context, scope Scope) (*DashboardStats, error)
}
