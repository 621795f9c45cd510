package store

import (
	"fmt"
	"time"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventMemberAdded        EventKind = "member_added"
	EventMemberUpdated      EventKind = "member_updated"
	EventProjectAdded       EventKind = "project_added"
	EventProjectUpdated     EventKind = "project_updated"
	EventBankAccountUpdated EventKind = "bank_account_updated"
	EventTransactionAdded   EventKind = "transaction_added"
	EventChatMessageAdded   EventKind = "chat_message_added"
	EventCreativeItemAdded  EventKind = "creative_item_added"
	EventSettingsUpdated    EventKind = "settings_updated"
	EventFeeAmountUpdated   EventKind = "fee_amount_updated"
	EventPixKeyUpdated      EventKind = "pix_key_updated"
	EventSessionStarted     EventKind = "session_started"
	EventSessionEnded       EventKind = "session_ended"
)

// Event describes an applied mutation. ID is the affected record id, 0 for singletons.
type Event struct {
	Kind EventKind
	ID   int
}

// AddMember appends a new member. The store assigns the id, deterministic
// avatar/banner URLs and three pending fees (Jan-Mar of the current year) at the
// fee amount configured at call time.
func (s *Store) AddMember(in domain.NewMember) domain.Member {
	s.mu.Lock()
	now := s.now()
	seed := now.UnixNano()
	banner := fmt.Sprintf("https://picsum.photos/seed/banner%d/1000/300", seed)
	m := domain.Member{
		ID:        nextID(s.members, func(m domain.Member) int { return m.ID }),
		Name:      in.Name,
		CPF:       in.CPF,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		JoinDate:  in.JoinDate,
		Role:      in.Role,
		AvatarURL: fmt.Sprintf("https://picsum.photos/seed/member%d/200", seed),
		BannerURL: &banner,
		Fees:      seedFees(now.Year(), s.feeAmount),
	}
	if m.JoinDate == "" {
		m.JoinDate = now.Format(domain.DateLayout)
	}
	if m.Role == "" {
		m.Role = domain.RoleMember
	}
	if in.Password != nil {
		pw := *in.Password
		m.Password = &pw
	}
	s.members = append(s.members, m)
	out := m.Clone()
	s.mu.Unlock()

	s.notify(Event{Kind: EventMemberAdded, ID: out.ID})
	return out
}

func seedFees(year int, amount decimal.Decimal) []domain.MonthlyFee {
	months := []time.Month{time.January, time.February, time.March}
	fees := make([]domain.MonthlyFee, len(months))
	for i, month := range months {
		fees[i] = domain.MonthlyFee{Month: month, Year: year, Status: domain.FeePending, Amount: amount}
	}
	return fees
}

// UpdateMember replaces the member with the same id. When that member is the
// session user, the session snapshot is refreshed to the same value.
// An unknown id is a silent no-op: nothing changes, no observer runs, false is returned.
func (s *Store) UpdateMember(m domain.Member) bool {
	return s.modifyMember(m.ID, func(cur *domain.Member) bool {
		*cur = m.Clone()
		return true
	})
}

// ChangeMemberRole sets a member's role.
func (s *Store) ChangeMemberRole(memberID int, role domain.Role) bool {
	return s.modifyMember(memberID, func(m *domain.Member) bool {
		m.Role = role
		return true
	})
}

// SetFeeStatus flips the status of the member's fee for month/year.
// It returns false when the member or the fee does not exist.
func (s *Store) SetFeeStatus(memberID int, month time.Month, year int, status domain.FeeStatus) bool {
	return s.modifyMember(memberID, func(m *domain.Member) bool {
		found := false
		for i := range m.Fees {
			if m.Fees[i].Month == month && m.Fees[i].Year == year {
				m.Fees[i].Status = status
				found = true
			}
		}
		return found
	})
}

// modifyMember runs fn on a copy of the member under the write lock and
// stores the copy when fn returns true. Observers run after unlock.
func (s *Store) modifyMember(id int, fn func(*domain.Member) bool) bool {
	s.mu.Lock()
	idx := s.memberIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	m := s.members[idx].Clone()
	if !fn(&m) {
		s.mu.Unlock()
		return false
	}
	m.ID = id
	s.replaceMemberLocked(idx, m)
	s.mu.Unlock()

	s.notify(Event{Kind: EventMemberUpdated, ID: id})
	return true
}

func (s *Store) memberIndexLocked(id int) int {
	for i := range s.members {
		if s.members[i].ID == id {
			return i
		}
	}
	return -1
}

// replaceMemberLocked stores m at idx and keeps the session user in step.
// Callers hold s.mu.
func (s *Store) replaceMemberLocked(idx int, m domain.Member) {
	s.members[idx] = m
	if s.session.Active() && s.session.CurrentUser.ID == m.ID {
		u := m.Clone()
		s.session.CurrentUser = &u
	}
}

// AddProject appends a project with an empty file list. Dates are not validated here.
func (s *Store) AddProject(in domain.NewProject) domain.Project {
	s.mu.Lock()
	p := domain.Project{
		ID:          nextID(s.projects, func(p domain.Project) int { return p.ID }),
		Name:        in.Name,
		Description: in.Description,
		ManagerID:   in.ManagerID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Status:      in.Status,
		Files:       []string{},
	}
	if p.Status == "" {
		p.Status = domain.ProjectInProgress
	}
	s.projects = append(s.projects, p)
	out := p.Clone()
	s.mu.Unlock()

	s.notify(Event{Kind: EventProjectAdded, ID: out.ID})
	return out
}

// UpdateProject replaces the project with the same id; unknown ids are a silent no-op.
func (s *Store) UpdateProject(p domain.Project) bool {
	return s.modifyProject(p.ID, func(cur *domain.Project) {
		*cur = p.Clone()
	})
}

// AttachProjectFile appends a file name to a project.
func (s *Store) AttachProjectFile(projectID int, name string) bool {
	return s.modifyProject(projectID, func(p *domain.Project) {
		p.Files = append(p.Files, name)
	})
}

// modifyProject applies fn to the stored project under the write lock.
func (s *Store) modifyProject(id int, fn func(*domain.Project)) bool {
	s.mu.Lock()
	applied := false
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i].Clone()
			fn(&p)
			p.ID = id
			if p.Files == nil {
				p.Files = []string{}
			}
			s.projects[i] = p
			applied = true
			break
		}
	}
	s.mu.Unlock()

	if applied {
		s.notify(Event{Kind: EventProjectUpdated, ID: id})
	}
	return applied
}

// UpdateBankAccount replaces the account with the same id; unknown ids are a silent no-op.
func (s *Store) UpdateBankAccount(a domain.BankAccount) bool {
	s.mu.Lock()
	applied := false
	for i := range s.bankAccounts {
		if s.bankAccounts[i].ID == a.ID {
			s.bankAccounts[i] = a
			applied = true
			break
		}
	}
	s.mu.Unlock()

	if applied {
		s.notify(Event{Kind: EventBankAccountUpdated, ID: a.ID})
	}
	return applied
}

// AddTransaction appends a ledger entry.
func (s *Store) AddTransaction(in domain.NewTransaction) domain.Transaction {
	s.mu.Lock()
	t := domain.Transaction{
		ID:          nextID(s.transactions, func(t domain.Transaction) int { return t.ID }),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
	}
	s.transactions = append(s.transactions, t)
	s.mu.Unlock()

	s.notify(Event{Kind: EventTransactionAdded, ID: t.ID})
	return t
}

// AddChatMessage appends a message from the session user, snapshotting the
// sender's name and avatar. Without an active session nothing happens and false is returned.
func (s *Store) AddChatMessage(text string) (domain.ChatMessage, bool) {
	s.mu.Lock()
	if s.liveSessionLocked() == nil {
		s.mu.Unlock()
		return domain.ChatMessage{}, false
	}
	sender := s.session.CurrentUser
	msg := domain.ChatMessage{
		ID:              nextID(s.chatMessages, func(c domain.ChatMessage) int { return c.ID }),
		SenderID:        sender.ID,
		SenderName:      sender.Name,
		SenderAvatarURL: sender.AvatarURL,
		Text:            text,
		Timestamp:       s.now().UTC(),
	}
	s.chatMessages = append(s.chatMessages, msg)
	s.mu.Unlock()

	s.notify(Event{Kind: EventChatMessageAdded, ID: msg.ID})
	return msg, true
}

// AddCreativeHistoryItem prepends a generation result.
func (s *Store) AddCreativeHistoryItem(in domain.NewCreativeHistoryItem) domain.CreativeHistoryItem {
	s.mu.Lock()
	item := domain.CreativeHistoryItem{
		ID:        nextID(s.creativeHistory, func(h domain.CreativeHistoryItem) int { return h.ID }),
		Type:      in.Type,
		Prompt:    in.Prompt,
		Result:    in.Result,
		Timestamp: s.now().UTC(),
	}
	s.creativeHistory = append([]domain.CreativeHistoryItem{item}, s.creativeHistory...)
	s.mu.Unlock()

	s.notify(Event{Kind: EventCreativeItemAdded, ID: item.ID})
	return item
}

// UpdateSettings deep-merges patch into the settings and returns the result.
func (s *Store) UpdateSettings(patch domain.SettingsPatch) domain.Settings {
	s.mu.Lock()
	s.settings = s.settings.Merge(patch)
	out := s.settings.Merge(domain.SettingsPatch{})
	s.mu.Unlock()

	s.notify(Event{Kind: EventSettingsUpdated})
	return out
}

// UpdateMembershipFeeAmount changes the amount used for future fee seeding only.
func (s *Store) UpdateMembershipFeeAmount(amount decimal.Decimal) {
	s.mu.Lock()
	s.feeAmount = amount
	s.mu.Unlock()

	s.notify(Event{Kind: EventFeeAmountUpdated})
}

// UpdatePixKey replaces the PIX key shown to members paying their fees.
func (s *Store) UpdatePixKey(key string) {
	s.mu.Lock()
	s.pixKey = key
	s.mu.Unlock()

	s.notify(Event{Kind: EventPixKeyUpdated})
}

// Session returns a copy of the active session, or nil when anonymous.
// A session past its ExpiresAt reads as anonymous.
func (s *Store) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	live := s.liveSessionLocked()
	if live == nil {
		return nil
	}
	c := live.Clone()
	return &c
}

func (s *Store) liveSessionLocked() *domain.Session {
	if !s.session.Active() || s.session.Expired(s.now()) {
		return nil
	}
	return s.session
}

// StartSession installs sess unless a live session already exists, in which
// case nothing changes and false is returned. A lapsed session is replaced.
func (s *Store) StartSession(sess domain.Session) bool {
	c := sess.Clone()
	c.IsAuthenticated = c.CurrentUser != nil
	s.mu.Lock()
	if s.liveSessionLocked() != nil {
		s.mu.Unlock()
		return false
	}
	lapsed := s.session != nil
	s.session = &c
	s.mu.Unlock()

	if lapsed {
		s.notify(Event{Kind: EventSessionEnded})
	}
	s.notify(Event{Kind: EventSessionStarted, ID: sessionUserID(c)})
	return true
}

func sessionUserID(sess domain.Session) int {
	if sess.CurrentUser == nil {
		return 0
	}
	return sess.CurrentUser.ID
}

// ClearSession drops the active session. It always succeeds.
func (s *Store) ClearSession() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.notify(Event{Kind: EventSessionEnded})
}
