package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeMailer records every dispatched message and can be told to fail.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})

	return nil
}

func (m *fakeMailer) lastCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return ""
	}
	body := m.sent[len(m.sent)-1].Body

	return body[len(body)-6:]
}

// fakeHasher is a transparent stand-in so credential tests do not pay bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService mints predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) GenerateTokens(subjectID int64, role string) (string, string, error) {
	id := strconv.FormatInt(subjectID, 10)

	return "access-" + role + "-" + id, "refresh-" + role + "-" + id, nil
}

func (fakeTokenService) ValidateAccessToken(string) (*jwt.Token, error) {
	return nil, errors.New("not implemented in fake")
}

func (fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

// fakeQRService returns a canned payload instead of rendering a PNG.
type fakeQRService struct{}

func (fakeQRService) GenerateBookingQR(bookingID int64) ([]byte, error) {
	return []byte("qr:" + strconv.FormatInt(bookingID, 10)), nil
}

func (fakeQRService) ParseBookingQR(qrData string) (int64, error) {
	return strconv.ParseInt(qrData[3:], 10, 64)
}

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int64]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *user

	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			cp := *user

			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp

	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		cp := *user
		users = append(users, &cp)
	}

	return users, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.users)), nil
}

// memHostelRepo is an in-memory HostelRepository.
type memHostelRepo struct {
	mu      sync.Mutex
	nextID  int64
	hostels map[int64]*entity.Hostel
}

func newMemHostelRepo() *memHostelRepo {
	return &memHostelRepo{nextID: 1, hostels: make(map[int64]*entity.Hostel)}
}

func (r *memHostelRepo) FindByID(_ context.Context, id int64) (*entity.Hostel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hostel, ok := r.hostels[id]
	if !ok {
		return nil, repository.ErrHostelNotFound
	}
	cp := *hostel

	return &cp, nil
}

func (r *memHostelRepo) FindByEmail(_ context.Context, email string) (*entity.Hostel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, hostel := range r.hostels {
		if hostel.Email == email {
			cp := *hostel

			return &cp, nil
		}
	}

	return nil, repository.ErrHostelNotFound
}

func (r *memHostelRepo) Create(_ context.Context, hostel *entity.Hostel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hostel.ID = r.nextID
	r.nextID++
	cp := *hostel
	r.hostels[hostel.ID] = &cp

	return nil
}

func (r *memHostelRepo) Update(_ context.Context, hostel *entity.Hostel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hostels[hostel.ID]; !ok {
		return repository.ErrHostelNotFound
	}
	cp := *hostel
	r.hostels[hostel.ID] = &cp

	return nil
}

func (r *memHostelRepo) SetVerified(_ context.Context, id int64, verified bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hostel, ok := r.hostels[id]
	if !ok {
		return repository.ErrHostelNotFound
	}
	hostel.Verified = verified

	return nil
}

func (r *memHostelRepo) List(_ context.Context) ([]*entity.Hostel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hostels := make([]*entity.Hostel, 0, len(r.hostels))
	for _, hostel := range r.hostels {
		cp := *hostel
		hostels = append(hostels, &cp)
	}

	return hostels, nil
}

func (r *memHostelRepo) ListVerified(_ context.Context) ([]*entity.Hostel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var hostels []*entity.Hostel
	for _, hostel := range r.hostels {
		if !hostel.Verified {
			continue
		}
		cp := *hostel
		hostels = append(hostels, &cp)
	}

	return hostels, nil
}

func (r *memHostelRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.hostels)), nil
}

// memAdminRepo is an in-memory AdminRepository.
type memAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*entity.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: make(map[string]*entity.Admin)}
}

func (r *memAdminRepo) add(admin *entity.Admin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *admin
	r.admins[admin.Email] = &cp
}

func (r *memAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin, ok := r.admins[email]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	cp := *admin

	return &cp, nil
}

// memBookingRepo is an in-memory BookingRepository.
type memBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{nextID: 1, bookings: make(map[int64]*entity.Booking)}
}

func (r *memBookingRepo) FindByID(_ context.Context, id int64) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	cp := *booking

	return &cp, nil
}

func (r *memBookingRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.UserID != userID {
			continue
		}
		cp := *booking
		bookings = append(bookings, &cp)
	}

	return bookings, nil
}

func (r *memBookingRepo) ListByHostel(_ context.Context, hostelID int64) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.HostelID != hostelID {
			continue
		}
		cp := *booking
		bookings = append(bookings, &cp)
	}

	return bookings, nil
}

func (r *memBookingRepo) List(_ context.Context) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := make([]*entity.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		cp := *booking
		bookings = append(bookings, &cp)
	}

	return bookings, nil
}

func (r *memBookingRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.bookings)), nil
}

func (r *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextID
	r.nextID++
	cp := *booking
	r.bookings[booking.ID] = &cp

	return nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id int64, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	booking.Status = status

	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return repository.ErrBookingNotFound
	}
	delete(r.bookings, id)

	return nil
}

// memFeedbackRepo is an in-memory FeedbackRepository.
type memFeedbackRepo struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64]*entity.Feedback
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{nextID: 1, entries: make(map[int64]*entity.Feedback)}
}

func (r *memFeedbackRepo) Create(_ context.Context, feedback *entity.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	feedback.ID = r.nextID
	r.nextID++
	cp := *feedback
	r.entries[feedback.ID] = &cp

	return nil
}

func (r *memFeedbackRepo) List(_ context.Context) ([]*entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.collect(func(*entity.Feedback) bool { return true }), nil
}

func (r *memFeedbackRepo) ListByHostel(_ context.Context, hostelID int64) ([]*entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.collect(func(f *entity.Feedback) bool { return f.HostelID == hostelID }), nil
}

// collect returns matching entries newest first, mirroring the SQL ordering.
func (r *memFeedbackRepo) collect(keep func(*entity.Feedback) bool) []*entity.Feedback {
	var entries []*entity.Feedback
	for _, feedback := range r.entries {
		if !keep(feedback) {
			continue
		}
		cp := *feedback
		entries = append(entries, &cp)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}

		return entries[i].ID > entries[j].ID
	})

	return entries
}

func (r *memFeedbackRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.entries)), nil
}

func (r *memFeedbackRepo) AverageRating(_ context.Context, hostelID int64) (*float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum, count float64
	for _, feedback := range r.entries {
		if feedback.HostelID != hostelID {
			continue
		}
		sum += float64(feedback.Rating)
		count++
	}
	if count == 0 {
		return nil, nil
	}
	average := sum / count

	return &average, nil
}

// memDescriptionRepo is an in-memory HostelDescriptionRepository.
type memDescriptionRepo struct {
	mu           sync.Mutex
	nextID       int64
	descriptions map[int64]*entity.HostelDescription
}

func newMemDescriptionRepo() *memDescriptionRepo {
	return &memDescriptionRepo{nextID: 1, descriptions: make(map[int64]*entity.HostelDescription)}
}

func (r *memDescriptionRepo) Create(_ context.Context, description *entity.HostelDescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	description.ID = r.nextID
	r.nextID++
	for i := range description.RoomCounts {
		description.RoomCounts[i].DescriptionID = description.ID
	}
	cp := *description
	cp.RoomCounts = append([]entity.RoomTypeCount(nil), description.RoomCounts...)
	r.descriptions[description.ID] = &cp

	return nil
}

func (r *memDescriptionRepo) FindByHostel(_ context.Context, hostelID int64) (*entity.HostelDescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var earliest *entity.HostelDescription
	for _, description := range r.descriptions {
		if description.HostelID != hostelID {
			continue
		}
		if earliest == nil || description.ID < earliest.ID {
			earliest = description
		}
	}
	if earliest == nil {
		return nil, repository.ErrHostelDescriptionNotFound
	}
	cp := *earliest
	cp.RoomCounts = append([]entity.RoomTypeCount(nil), earliest.RoomCounts...)

	return &cp, nil
}

// memTxManager runs the callback directly against the shared in-memory repos.
type memTxManager struct {
	userRepo    *memUserRepo
	hostelRepo  *memHostelRepo
	adminRepo   *memAdminRepo
	bookingRepo *memBookingRepo
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) UserRepo() repository.UserRepository       { return m.userRepo }
func (m *memTxManager) HostelRepo() repository.HostelRepository   { return m.hostelRepo }
func (m *memTxManager) AdminRepo() repository.AdminRepository     { return m.adminRepo }
func (m *memTxManager) BookingRepo() repository.BookingRepository { return m.bookingRepo }
