package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	DailyID         int    `gorm:"not null;uniqueIndex:ux_tickets_date_daily"`
	TicketDate      string `gorm:"size:10;not null;uniqueIndex:ux_tickets_date_daily;index"`
	UserID          uint   `gorm:"not null;index"`
	CategoryID      *uint  `gorm:"index"`
	Status          string `gorm:"size:20;not null;index"`
	AssignedStaffID *uint  `gorm:"index"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null;index"`
	ClosedAt        *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type MessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	SenderRole string `gorm:"size:10;not null"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}

type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	ExternalID  int64  `gorm:"not null;uniqueIndex"`
	DisplayName string `gorm:"size:255"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// DailyTicketCounterModel backs the per-date sequence. One row per business
// date; the unique index on Date is what lets concurrent first-of-the-day
// inserts detect each other.
type DailyTicketCounterModel struct {
	ID              uint   `gorm:"primaryKey"`
	Date            string `gorm:"size:10;not null;uniqueIndex"`
	LastIssuedValue int    `gorm:"not null"`
}

func (DailyTicketCounterModel) TableName() string {
	return "daily_ticket_counters"
}
