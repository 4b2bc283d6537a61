// Package filestore persists the hotel state as line-oriented text files in
// a single data directory. It is a stateless codec: every save fully
// rewrites the resource through a temp file renamed into place, so a crash
// mid-write never truncates a previously valid file.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

const (
	roomsFileName       = "rooms.txt"
	customersFileName   = "customers.txt"
	revenueFileName     = "revenue.txt"
	staffFileName       = "staff.txt"
	maintenanceFileName = "maintenance.txt"
	feedbackFileName    = "feedback.txt"
	credentialsFileName = "admin_credentials.txt"

	tempFileSuffix = ".tmp"

	roomFieldCount     = 6
	customerFieldCount = 5
	revenueFieldCount  = 3
	staffLineCount     = 4

	errorOperationStore    = "store"
	errorSubjectDir        = "dir"
	errorSubjectRooms      = "rooms"
	errorSubjectCustomers  = "customers"
	errorSubjectRevenue    = "revenue"
	errorSubjectStaff      = "staff"
	errorCodeRead          = "read"
	errorCodeWrite         = "write"
	errorCodeDecode        = "decode"
)

// Store reads and writes the flat-file resources under one directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, wrapStoreError(errorSubjectDir, errorCodeWrite, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (store *Store) Dir() string {
	return store.dir
}

// Load reads every resource. Missing files load as empty collections: a
// missing file means first run, not an error. Present but malformed files
// surface ErrResourceUnreadable without touching other resources.
func (store *Store) Load(ctx context.Context) (hotel.State, error) {
	var state hotel.State
	rooms, err := store.loadRooms()
	if err != nil {
		return hotel.State{}, err
	}
	bookings, err := store.loadBookings()
	if err != nil {
		return hotel.State{}, err
	}
	staff, err := store.loadStaff()
	if err != nil {
		return hotel.State{}, err
	}
	revenue, err := store.loadRevenue()
	if err != nil {
		return hotel.State{}, err
	}
	state.Rooms = rooms
	state.Bookings = bookings
	state.Staff = staff
	state.Revenue = revenue
	return state, nil
}

// SaveRooms rewrites the rooms resource: a count line followed by one
// whitespace-delimited record per room.
func (store *Store) SaveRooms(ctx context.Context, rooms []hotel.Room) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%d\n", len(rooms))
	for _, room := range rooms {
		fmt.Fprintf(&builder, "%d %s %s %d %s %s\n",
			room.Number.Int(),
			room.Type.String(),
			formatFloat(room.Price.Float64()),
			room.Capacity,
			boolToken(room.Available),
			boolToken(room.UnderMaintenance),
		)
	}
	return store.writeResource(roomsFileName, errorSubjectRooms, builder.String())
}

// SaveBookings rewrites the customers resource.
func (store *Store) SaveBookings(ctx context.Context, bookings []hotel.Booking) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%d\n", len(bookings))
	for _, booking := range bookings {
		fmt.Fprintf(&builder, "%s %s %d %s %s\n",
			booking.Guest.String(),
			booking.Phone.String(),
			booking.Room.Int(),
			booking.CheckIn.String(),
			booking.CheckOut.String(),
		)
	}
	return store.writeResource(customersFileName, errorSubjectCustomers, builder.String())
}

// SaveStaff rewrites the staff resource as repeating 4-line records. Name
// and role live on their own lines and may contain spaces.
func (store *Store) SaveStaff(ctx context.Context, staff []hotel.StaffMember) error {
	var builder strings.Builder
	for _, member := range staff {
		fmt.Fprintf(&builder, "%d\n%s\n%s\n%s\n",
			member.ID,
			member.Name,
			member.Role,
			formatFloat(member.Salary.Float64()),
		)
	}
	return store.writeResource(staffFileName, errorSubjectStaff, builder.String())
}

// SaveRevenue rewrites the revenue triple.
func (store *Store) SaveRevenue(ctx context.Context, totals hotel.RevenueTotals) error {
	content := fmt.Sprintf("%s %s %s\n",
		formatFloat(totals.Room),
		formatFloat(totals.Service),
		formatFloat(totals.Total),
	)
	return store.writeResource(revenueFileName, errorSubjectRevenue, content)
}

func (store *Store) loadRooms() ([]hotel.Room, error) {
	tokens, found, err := store.readTokens(roomsFileName, errorSubjectRooms)
	if err != nil || !found || len(tokens) == 0 {
		return nil, err
	}
	count, err := parseCount(tokens[0])
	if err != nil || len(tokens) != 1+count*roomFieldCount {
		return nil, store.decodeError(errorSubjectRooms, "bad record layout")
	}
	rooms := make([]hotel.Room, 0, count)
	for index := 0; index < count; index++ {
		fields := tokens[1+index*roomFieldCount : 1+(index+1)*roomFieldCount]
		room, err := decodeRoom(fields)
		if err != nil {
			return nil, store.decodeError(errorSubjectRooms, err.Error())
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (store *Store) loadBookings() ([]hotel.Booking, error) {
	tokens, found, err := store.readTokens(customersFileName, errorSubjectCustomers)
	if err != nil || !found || len(tokens) == 0 {
		return nil, err
	}
	count, err := parseCount(tokens[0])
	if err != nil || len(tokens) != 1+count*customerFieldCount {
		return nil, store.decodeError(errorSubjectCustomers, "bad record layout")
	}
	bookings := make([]hotel.Booking, 0, count)
	for index := 0; index < count; index++ {
		fields := tokens[1+index*customerFieldCount : 1+(index+1)*customerFieldCount]
		booking, err := decodeBooking(fields)
		if err != nil {
			return nil, store.decodeError(errorSubjectCustomers, err.Error())
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (store *Store) loadStaff() ([]hotel.StaffMember, error) {
	content, found, err := store.readResource(staffFileName, errorSubjectStaff)
	if err != nil || !found {
		return nil, err
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, nil
	}
	if len(lines)%staffLineCount != 0 {
		return nil, store.decodeError(errorSubjectStaff, "bad record layout")
	}
	staff := make([]hotel.StaffMember, 0, len(lines)/staffLineCount)
	for index := 0; index < len(lines); index += staffLineCount {
		member, err := decodeStaffMember(lines[index : index+staffLineCount])
		if err != nil {
			return nil, store.decodeError(errorSubjectStaff, err.Error())
		}
		staff = append(staff, member)
	}
	return staff, nil
}

func (store *Store) loadRevenue() (hotel.RevenueTotals, error) {
	tokens, found, err := store.readTokens(revenueFileName, errorSubjectRevenue)
	if err != nil || !found || len(tokens) == 0 {
		return hotel.RevenueTotals{}, err
	}
	if len(tokens) != revenueFieldCount {
		return hotel.RevenueTotals{}, store.decodeError(errorSubjectRevenue, "expected three totals")
	}
	roomRevenue, roomErr := strconv.ParseFloat(tokens[0], 64)
	serviceRevenue, serviceErr := strconv.ParseFloat(tokens[1], 64)
	if roomErr != nil || serviceErr != nil {
		return hotel.RevenueTotals{}, store.decodeError(errorSubjectRevenue, "bad total")
	}
	// The stored grand total is never trusted; it is recomputed from the parts.
	return hotel.RevenueTotals{
		Room:    roomRevenue,
		Service: serviceRevenue,
		Total:   roomRevenue + serviceRevenue,
	}, nil
}

func (store *Store) readTokens(name string, subject string) ([]string, bool, error) {
	content, found, err := store.readResource(name, subject)
	if err != nil || !found {
		return nil, found, err
	}
	return strings.Fields(content), true, nil
}

func (store *Store) readResource(name string, subject string) (string, bool, error) {
	content, err := os.ReadFile(filepath.Join(store.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapStoreError(subject, errorCodeRead, err)
	}
	return string(content), true, nil
}

func (store *Store) writeResource(name string, subject string, content string) error {
	path := filepath.Join(store.dir, name)
	temp := path + tempFileSuffix
	if err := os.WriteFile(temp, []byte(content), 0o644); err != nil {
		return wrapStoreError(subject, errorCodeWrite, err)
	}
	if err := os.Rename(temp, path); err != nil {
		return wrapStoreError(subject, errorCodeWrite, err)
	}
	return nil
}

func (store *Store) decodeError(subject string, detail string) error {
	return wrapStoreError(subject, errorCodeDecode, fmt.Errorf("%w: %s", hotel.ErrResourceUnreadable, detail))
}

func decodeRoom(fields []string) (hotel.Room, error) {
	numberValue, err := strconv.Atoi(fields[0])
	if err != nil {
		return hotel.Room{}, err
	}
	number, err := hotel.NewRoomNumber(numberValue)
	if err != nil {
		return hotel.Room{}, err
	}
	roomType, err := hotel.NewRoomType(fields[1])
	if err != nil {
		return hotel.Room{}, err
	}
	priceValue, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return hotel.Room{}, err
	}
	price, err := hotel.NewPrice(priceValue)
	if err != nil {
		return hotel.Room{}, err
	}
	capacity, err := strconv.Atoi(fields[3])
	if err != nil {
		return hotel.Room{}, err
	}
	available, err := parseBoolToken(fields[4])
	if err != nil {
		return hotel.Room{}, err
	}
	underMaintenance, err := parseBoolToken(fields[5])
	if err != nil {
		return hotel.Room{}, err
	}
	room, err := hotel.NewRoom(number, roomType, price, capacity)
	if err != nil {
		return hotel.Room{}, err
	}
	room.Available = available
	room.UnderMaintenance = underMaintenance
	return room, nil
}

func decodeBooking(fields []string) (hotel.Booking, error) {
	guest, err := hotel.NewGuestName(fields[0])
	if err != nil {
		return hotel.Booking{}, err
	}
	phone, err := hotel.NewPhone(fields[1])
	if err != nil {
		return hotel.Booking{}, err
	}
	roomValue, err := strconv.Atoi(fields[2])
	if err != nil {
		return hotel.Booking{}, err
	}
	room, err := hotel.NewRoomNumber(roomValue)
	if err != nil {
		return hotel.Booking{}, err
	}
	checkIn, err := hotel.NewStayDate(fields[3])
	if err != nil {
		return hotel.Booking{}, err
	}
	checkOut, err := hotel.NewStayDate(fields[4])
	if err != nil {
		return hotel.Booking{}, err
	}
	return hotel.NewBooking(guest, phone, room, checkIn, checkOut), nil
}

func decodeStaffMember(lines []string) (hotel.StaffMember, error) {
	id, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return hotel.StaffMember{}, err
	}
	salaryValue, err := strconv.ParseFloat(strings.TrimSpace(lines[3]), 64)
	if err != nil {
		return hotel.StaffMember{}, err
	}
	salary, err := hotel.NewPrice(salaryValue)
	if err != nil {
		return hotel.StaffMember{}, err
	}
	return hotel.NewStaffMember(id, lines[1], lines[2], salary)
}

func parseCount(token string) (int, error) {
	count, err := strconv.Atoi(token)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("bad count %q", token)
	}
	return count, nil
}

func parseBoolToken(token string) (bool, error) {
	switch token {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("bad flag %q", token)
	}
}

func boolToken(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// formatFloat renders the shortest representation that parses back exactly,
// keeping save output byte-stable across round trips.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func wrapStoreError(subject string, code string, err error) error {
	return hotel.WrapError(errorOperationStore, subject, code, err)
}
