package domain

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin        = 1
	RolePractitioner = 2
)

// User é o profissional (ou administrador) que acessa a API.
// O ID do usuário é o dono dos procedimentos nos relatórios.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	ReportEmail  *string    `json:"report_email"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u User) DisplayName() string {
	return strings.TrimSpace(u.Name + " " + u.Lastname)
}

type UpdateUserRequest struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Email       *string `json:"email"`
	Active      *bool   `json:"active"`
	RoleID      *int    `json:"role_id"`
	ReportEmail *string `json:"report_email"`
	Deleted     *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}

// Owner monta o dono do relatório a partir do token
func (c Claims) Owner() ReportOwner {
	return ReportOwner{
		ID:   c.UserID,
		Name: strings.TrimSpace(c.UserName + " " + c.UserLastname),
	}
}
