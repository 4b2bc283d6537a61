package gormstore

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomRow mirrors the rooms table. Position preserves insertion order so
// listings match the flat-file backend exactly.
type RoomRow struct {
	RoomNumber       int     `gorm:"primaryKey"`
	Type             string  `gorm:"not null"`
	Price            float64 `gorm:"not null"`
	Capacity         int     `gorm:"not null"`
	Available        bool    `gorm:"not null"`
	UnderMaintenance bool    `gorm:"not null"`
	Position         int     `gorm:"not null;index"`
}

func (RoomRow) TableName() string { return "rooms" }

// BookingRow mirrors the bookings table.
type BookingRow struct {
	BookingID  string `gorm:"type:uuid;primaryKey"`
	GuestName  string `gorm:"not null"`
	Phone      string `gorm:"not null"`
	RoomNumber int    `gorm:"not null;index"`
	CheckIn    string `gorm:"not null"`
	CheckOut   string `gorm:"not null"`
	Position   int    `gorm:"not null;index"`
}

func (BookingRow) TableName() string { return "bookings" }

func (booking *BookingRow) BeforeCreate(tx *gorm.DB) error {
	if booking.BookingID == "" {
		booking.BookingID = uuid.NewString()
	}
	return nil
}

// StaffRow mirrors the staff table.
type StaffRow struct {
	StaffID  int     `gorm:"primaryKey"`
	Name     string  `gorm:"not null"`
	Role     string  `gorm:"not null"`
	Salary   float64 `gorm:"not null"`
	Position int     `gorm:"not null;index"`
}

func (StaffRow) TableName() string { return "staff" }

// RevenueRow is the single-row revenue table.
type RevenueRow struct {
	ID             int     `gorm:"primaryKey"`
	RoomRevenue    float64 `gorm:"not null"`
	ServiceRevenue float64 `gorm:"not null"`
	TotalRevenue   float64 `gorm:"not null"`
}

func (RevenueRow) TableName() string { return "revenue" }

// MaintenanceRow is one appended maintenance log entry.
type MaintenanceRow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	RoomNumber int       `gorm:"not null"`
	Issue      string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (MaintenanceRow) TableName() string { return "maintenance_log" }

// FeedbackRow is one appended feedback entry.
type FeedbackRow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Stars     int       `gorm:"not null"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (FeedbackRow) TableName() string { return "feedback" }

// BookingEventRow is the append-only operation audit table, the database
// counterpart of the in-memory booking-order log.
type BookingEventRow struct {
	EventID   string         `gorm:"type:uuid;primaryKey"`
	Operation string         `gorm:"not null;index"`
	Details   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null;index"`
}

func (BookingEventRow) TableName() string { return "booking_events" }

func (event *BookingEventRow) BeforeCreate(tx *gorm.DB) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	return nil
}
