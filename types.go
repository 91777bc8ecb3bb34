package clubadmin

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/easyvoley/clubadmin/permission"
)

// Role is the closed set of back-office roles. Anything the API sends that
// is not recognized maps to [RoleUnknown], which holds no permissions.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdministrator
	RoleTreasurer
	RoleCollector
)

// ParseRole normalizes a role string from the API. Both the canonical
// English names and the legacy Spanish values the server still sends are
// accepted, case-insensitively.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "administrator", "administrador", "admin":
		return RoleAdministrator
	case "treasurer", "tesorero":
		return RoleTreasurer
	case "collector", "cobrador":
		return RoleCollector
	default:
		return RoleUnknown
	}
}

// String returns the canonical role name, empty for [RoleUnknown] so that
// permission evaluation fails closed.
func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return permission.RoleAdministrator
	case RoleTreasurer:
		return permission.RoleTreasurer
	case RoleCollector:
		return permission.RoleCollector
	default:
		return ""
	}
}

func (r Role) IsAdministrator() bool { return r == RoleAdministrator }
func (r Role) IsTreasurer() bool     { return r == RoleTreasurer }
func (r Role) IsCollector() bool     { return r == RoleCollector }

// User is the authenticated identity: what /auth/login and /users/me return.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"-"`

	// RawRole is the role string exactly as the API sent it. Role is its
	// parsed form and the one permission checks use.
	RawRole string `json:"role"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = User(p)
	u.Role = ParseRole(u.RawRole)
	return nil
}

// Account is a managed back-office user record from /users. Distinct from
// [User]: accounts are the administration surface, User is the session
// identity.
type Account struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"role"`
	Category  *CategoryRef `json:"category,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// CategoryRef is the embedded category shape nested inside other resources.
type CategoryRef struct {
	ID     string  `json:"_id"`
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
	Quota  float64 `json:"cuota,omitempty"`
}

// Category is a playing category with its monthly quota ("cuota").
type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Quota     float64   `json:"cuota"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Player is a registered club player.
type Player struct {
	ID        string      `json:"_id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	FullName  string      `json:"fullName"`
	Email     string      `json:"email"`
	BirthDate string      `json:"birthDate"`
	Phone     string      `json:"phone,omitempty"`
	Category  CategoryRef `json:"category"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Payment methods accepted by the API.
const (
	PaymentMethodCash = "efectivo"
	PaymentMethodBank = "banco"
)

// Payment is one month's paid quota for a player. Category is the historic
// category at payment time, not necessarily the player's current one.
type Payment struct {
	ID            string      `json:"_id"`
	PlayerID      string      `json:"playerId"`
	Month         int         `json:"month"`
	Year          int         `json:"year"`
	Amount        float64     `json:"amount"`
	PaymentMethod string      `json:"paymentMethod"`
	CategoryID    string      `json:"categoryId"`
	Player        *Player     `json:"player,omitempty"`
	Category      CategoryRef `json:"category"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// FamilyContactInfo is the optional contact block on a family group.
type FamilyContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// FamilyMember is the player shape embedded in a family group.
type FamilyMember struct {
	ID        string       `json:"_id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	FullName  string       `json:"fullName"`
	Email     string       `json:"email"`
	Category  *CategoryRef `json:"category,omitempty"`
}

// Family groups players for a shared discount on their combined quota.
type Family struct {
	ID              string            `json:"_id"`
	Name            string            `json:"name"`
	PrimaryPlayer   FamilyMember      `json:"primaryPlayer"`
	Members         []FamilyMember    `json:"members"`
	ContactInfo     FamilyContactInfo `json:"contactInfo"`
	FamilyDiscount  float64           `json:"familyDiscount"`
	IsActive        bool              `json:"isActive"`
	Notes           string            `json:"notes,omitempty"`
	TotalQuota      float64           `json:"totalQuota,omitempty"`
	DiscountedTotal float64           `json:"discountedTotal,omitempty"`
	DiscountAmount  float64           `json:"discountAmount,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Collector is a user eligible for category assignments.
type Collector struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Assignment binds a collector to the category they collect for.
type Assignment struct {
	ID         string      `json:"id"`
	Collector  Collector   `json:"collector"`
	Category   CategoryRef `json:"category"`
	AssignedAt time.Time   `json:"assignedAt"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// AssignmentSummary is the aggregate block returned with the assignment list.
type AssignmentSummary struct {
	TotalCollectors      int `json:"totalCollectors"`
	TotalCategories      int `json:"totalCategories"`
	TotalAssignments     int `json:"totalAssignments"`
	UnassignedCategories int `json:"unassignedCategories"`
}

// FamilyDiscountTier is one member-count → discount-percentage rule.
type FamilyDiscountTier struct {
	ID                 string  `json:"_id,omitempty"`
	MemberCount        int     `json:"memberCount"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Description        string  `json:"description"`
}

// FamilyDiscountsConfig holds the discount rules applied to family groups.
type FamilyDiscountsConfig struct {
	ByMemberCount       []FamilyDiscountTier `json:"byMemberCount"`
	MaxDiscount         float64              `json:"maxDiscount"`
	AutoDiscountEnabled bool                 `json:"autoDiscountEnabled"`
}

// ReceiptsConfig customizes generated receipts.
type ReceiptsConfig struct {
	FooterText string `json:"footerText"`
	LogoURL    string `json:"logoUrl"`
}

// SystemConfig is the club-wide presentation settings block.
type SystemConfig struct {
	ClubName string         `json:"clubName"`
	Currency string         `json:"currency"`
	Receipts ReceiptsConfig `json:"receipts"`
}

// NotificationsConfig controls outbound notification settings.
type NotificationsConfig struct {
	ContactEmail string `json:"contactEmail"`
	Enabled      bool   `json:"enabled"`
}

// Configuration is the single club configuration document.
type Configuration struct {
	ID              string                `json:"_id"`
	FamilyDiscounts FamilyDiscountsConfig `json:"familyDiscounts"`
	System          SystemConfig          `json:"system"`
	Notifications   NotificationsConfig   `json:"notifications"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// RecentPayment is the trimmed payment shape on the dashboard.
type RecentPayment struct {
	ID            string    `json:"_id"`
	Player        Player    `json:"player"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CategoryStats is per-category player counts on the dashboard.
type CategoryStats struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Gender       string  `json:"gender"`
	Quota        float64 `json:"cuota"`
	PlayersCount int     `json:"playersCount"`
}

// DashboardStats is the /stats/dashboard payload.
type DashboardStats struct {
	TotalPlayers      int             `json:"totalPlayers"`
	TotalCategories   int             `json:"totalCategories"`
	PaymentsThisMonth int             `json:"paymentsThisMonth"`
	MonthlyIncome     float64         `json:"monthlyIncome"`
	YearlyIncome      float64         `json:"yearlyIncome"`
	CurrentMonth      int             `json:"currentMonth"`
	CurrentYear       int             `json:"currentYear"`
	RecentPayments    []RecentPayment `json:"recentPayments"`
	CategoriesStats   []CategoryStats `json:"categoriesStats"`
}

// MonthlyIncome is one month's row in the yearly income report.
type MonthlyIncome struct {
	Month         int     `json:"month"`
	MonthName     string  `json:"monthName"`
	Total         float64 `json:"total"`
	PaymentsCount int     `json:"paymentsCount"`
}

// MonthlyIncomeReport is the /stats/monthly-income payload.
type MonthlyIncomeReport struct {
	Year           int             `json:"year"`
	MonthsData     []MonthlyIncome `json:"monthsData"`
	TotalYearly    float64         `json:"totalYearly"`
	TotalPayments  int             `json:"totalPayments"`
	AverageMonthly float64         `json:"averageMonthly"`
}

// UnpaidMonth is one unpaid month in a debtor row.
type UnpaidMonth struct {
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	MonthName string  `json:"monthName"`
	Amount    float64 `json:"amount"`
}

// Debtor is one player owing money within the tracked window.
type Debtor struct {
	PlayerID          string        `json:"playerId"`
	PlayerName        string        `json:"playerName"`
	PlayerEmail       string        `json:"playerEmail"`
	Category          string        `json:"category"`
	CategoryQuota     float64       `json:"categoryQuota"`
	UnpaidMonthsCount int           `json:"unpaidMonthsCount"`
	UnpaidMonths      []UnpaidMonth `json:"unpaidMonths"`
	TotalOwed         float64       `json:"totalOwed"`
}

// DebtorsSummary aggregates the debtor list.
type DebtorsSummary struct {
	TotalDebtors        int     `json:"totalDebtors"`
	TotalOwed           float64 `json:"totalOwed"`
	AverageMonthsUnpaid float64 `json:"averageMonthsUnpaid"`
	CurrentYear         int     `json:"currentYear"`
	CurrentMonth        int     `json:"currentMonth"`
	MonthsChecked       int     `json:"monthsChecked"`
}

// DebtorsReport is the /stats/debtors payload and the shape the local
// computation produces.
type DebtorsReport struct {
	Debtors []Debtor       `json:"debtors"`
	Summary DebtorsSummary `json:"summary"`

	// Uncategorized lists players skipped by the local computation because
	// they carry no category. They never silently count as zero-quota.
	Uncategorized []string `json:"-"`
}

// Spanish month names, indexed by month number. The API and reports use
// these for display.
var monthNames = [13]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish display name for month (1-12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}
