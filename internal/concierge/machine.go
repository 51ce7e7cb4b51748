package concierge

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"museum-concierge/internal/i18n"
	"museum-concierge/pkg/utils"

	"go.uber.org/zap"
)

// Option IDs. Selection is matched on these, never on the localized label.
const (
	OptStart      = "opt:start"
	OptSignIn     = "opt:signin"
	OptLangMore   = "opt:lang:more"
	OptDatePicker = "opt:date"
	OptPayConfirm = "opt:pay:confirm"
	OptPayCancel  = "opt:pay:cancel"

	optLangPrefix   = "opt:lang:"
	optTypePrefix   = "opt:type:"
	optQtyPrefix    = "opt:qty:"
	optGenderPrefix = "opt:gender:"
)

// initialLanguageCount is how many languages the first picker shows before
// the "More" option expands to the full list.
const initialLanguageCount = 4

var quantityPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// affirmatives recognized in free text on the payment confirmation step.
var affirmatives = []string{"yes", "oui", "sí", "हाँ"}

// genderSuffixes orders the gender option IDs to line up with the localized
// label list. The canonical stored value is the English label at the same
// index.
var genderSuffixes = []string{"male", "female", "other"}

// Experience is one bookable ticket type with its live availability.
// A nil Available means the catalog imposes no cap.
type Experience struct {
	Name      string
	Price     float64
	Available *int
}

// Catalog is the live inventory the machine consults mid-dialog.
type Catalog interface {
	Experiences(ctx context.Context) ([]Experience, error)
	// Remaining returns the open spots for a (ticket type, ISO date) slot.
	// Implementations fail closed: an unreachable inventory reports 0.
	Remaining(ctx context.Context, ticketType, date string) int
}

// Input is one user turn: free text, a tapped option, or both (the date
// picker taps OptDatePicker and carries the chosen date as text).
type Input struct {
	Text     string
	OptionID string
}

func (in Input) fromTap() bool { return in.OptionID != "" }

// View is the snapshot of session state a turn operates on. The machine
// never touches the session directly; the caller applies the Result under
// the session lock if the epoch is still current.
type View struct {
	State       State
	Draft       BookingDraft
	Guest       GuestProgress
	SignedIn    bool
	LastOptions []Option
}

// Result is the outcome of one turn.
type Result struct {
	// Dropped means the input was rejected without any state change and
	// nothing is appended to the log.
	Dropped bool
	// UserEcho is the content of the user message to append.
	UserEcho string
	// Messages are the bot replies to append after the echo.
	Messages []Message

	State State
	Draft BookingDraft
	Guest GuestProgress

	// BeginPayment asks the caller to create a payment order and hand the
	// client a checkout intent.
	BeginPayment bool
	// Declined means the visitor backed out at the confirmation step; the
	// caller runs the cancel sequence.
	Declined bool
}

// Machine is the pure dialog transition function. It holds no per-session
// state and is safe for concurrent use.
type Machine struct {
	catalog           Catalog
	log               *zap.Logger
	quantityShortcuts int
	fallbackCapacity  int
}

func NewMachine(catalog Catalog, cfg utils.ConciergeConfig, log *zap.Logger) *Machine {
	return &Machine{
		catalog:           catalog,
		log:               log.With(zap.String("component", "machine")),
		quantityShortcuts: cfg.QuantityShortcuts,
		fallbackCapacity:  cfg.FallbackCapacity,
	}
}

// Advance runs one dialog turn against a session snapshot.
func (m *Machine) Advance(ctx context.Context, view View, in Input) Result {
	res := Result{State: view.State, Draft: view.Draft, Guest: view.Guest}
	if res.Draft.Language == "" {
		res.Draft.Language = i18n.Default
	}

	echo := strings.TrimSpace(in.Text)
	if in.fromTap() {
		opt, ok := findOption(view.LastOptions, in.OptionID)
		if !ok {
			// Tap on an option that is no longer offered (stale client).
			res.Dropped = true
			return res
		}
		if in.OptionID != OptDatePicker {
			echo = opt.Label
		}
	} else if len(view.LastOptions) > 0 && view.State != StateQuantity {
		// Input locked: the last prompt demands a tap.
		res.Dropped = true
		return res
	}

	if echo == "" {
		res.Dropped = true
		return res
	}
	res.UserEcho = echo

	switch view.State {
	case StateGreeting:
		m.stepGreeting(&res, view)
	case StateLanguage:
		m.stepLanguage(ctx, &res, in)
	case StateTicketType:
		m.stepTicketType(ctx, &res, in, echo)
	case StateDate:
		m.stepDate(ctx, &res, in)
	case StateQuantity:
		m.stepQuantity(&res, echo)
	case StateGuestName:
		m.stepGuestName(&res, echo)
	case StateGuestGender:
		m.stepGuestGender(&res, in)
	case StateGuestAge:
		m.stepGuestAge(&res, echo)
	case StatePaymentConfirm:
		m.stepPaymentConfirm(&res, in, echo)
	default:
		// PAYING and FINISHED are orchestrator-driven; user input waits.
		res.Dropped = true
		res.UserEcho = ""
	}

	return res
}

func (m *Machine) stepGreeting(res *Result, view View) {
	lang := res.Draft.Language
	if !view.SignedIn {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeySignIn, nil),
			Option{ID: OptSignIn, Label: i18n.Resolve(lang, i18n.KeySignInBtn, nil)},
		))
		return
	}
	res.Messages = append(res.Messages, languagePrompt(lang, false))
	res.State = StateLanguage
}

func (m *Machine) stepLanguage(ctx context.Context, res *Result, in Input) {
	if in.OptionID == OptLangMore {
		res.Messages = append(res.Messages, languagePrompt(res.Draft.Language, true))
		return
	}

	var chosen string
	if strings.HasPrefix(in.OptionID, optLangPrefix) {
		chosen = strings.TrimPrefix(in.OptionID, optLangPrefix)
	} else {
		chosen, _ = i18n.Match(in.Text)
	}
	res.Draft.Language = chosen

	m.offerExperiences(ctx, res)
}

// offerExperiences fetches the catalog and prompts for a ticket type. An
// empty or unreachable catalog reads as everything sold out.
func (m *Machine) offerExperiences(ctx context.Context, res *Result) {
	lang := res.Draft.Language
	res.State = StateTicketType

	experiences := m.openExperiences(ctx)
	if len(experiences) == 0 {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeySoldOut, map[string]string{
				"type": "All experiences",
				"date": "today",
			}),
		))
		return
	}

	options := make([]Option, 0, len(experiences))
	for _, exp := range experiences {
		options = append(options, Option{
			ID:    optTypePrefix + exp.Name,
			Label: fmt.Sprintf("%s (₹%s)", exp.Name, formatAmount(exp.Price)),
		})
	}
	res.Messages = append(res.Messages, NewBotMessage(
		i18n.Resolve(lang, i18n.KeyExperience, nil), options...))
}

func (m *Machine) stepTicketType(ctx context.Context, res *Result, in Input, text string) {
	lang := res.Draft.Language
	experiences := m.openExperiences(ctx)

	var picked *Experience
	if strings.HasPrefix(in.OptionID, optTypePrefix) {
		name := strings.TrimPrefix(in.OptionID, optTypePrefix)
		for i := range experiences {
			if experiences[i].Name == name {
				picked = &experiences[i]
				break
			}
		}
	} else {
		lower := strings.ToLower(text)
		for i := range experiences {
			if strings.Contains(lower, strings.ToLower(experiences[i].Name)) {
				picked = &experiences[i]
				break
			}
		}
	}

	if picked == nil {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeyError, nil)))
		return
	}

	res.Draft.TicketType = picked.Name
	res.Draft.UnitPrice = picked.Price
	res.Messages = append(res.Messages, datePrompt(lang, picked.Name))
	res.State = StateDate
}

func (m *Machine) stepDate(ctx context.Context, res *Result, in Input) {
	lang := res.Draft.Language

	date, err := utils.ParseVisitDate(in.Text)
	if err != nil {
		res.Messages = append(res.Messages, datePrompt(lang, res.Draft.TicketType))
		return
	}
	iso := date.Format("2006-01-02")

	remaining := m.catalog.Remaining(ctx, res.Draft.TicketType, iso)
	if remaining <= 0 {
		// Sold out for this date: keep the ticket type, ask again.
		res.Messages = append(res.Messages,
			NewBotMessage(i18n.Resolve(lang, i18n.KeySoldOut, map[string]string{
				"type": res.Draft.TicketType,
				"date": iso,
			})),
			datePrompt(lang, res.Draft.TicketType),
		)
		return
	}

	res.Draft.Date = iso
	res.Draft.AvailableSpots = remaining

	shortcuts := m.quantityShortcuts
	if remaining < shortcuts {
		shortcuts = remaining
	}
	options := make([]Option, 0, shortcuts)
	for n := 1; n <= shortcuts; n++ {
		label := strconv.Itoa(n)
		options = append(options, Option{ID: optQtyPrefix + label, Label: label})
	}
	res.Messages = append(res.Messages, NewBotMessage(
		i18n.Resolve(lang, i18n.KeyGuests, nil), options...))
	res.State = StateQuantity
}

func (m *Machine) stepQuantity(res *Result, text string) {
	lang := res.Draft.Language

	// Format before range: a non-numeric entry never reads as "too many".
	if !quantityPattern.MatchString(text) {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeyInvalidNumber, nil)))
		return
	}
	qty, err := strconv.Atoi(text)
	if err != nil {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeyInvalidNumber, nil)))
		return
	}

	available := res.Draft.AvailableSpots
	if available == 0 {
		available = m.fallbackCapacity
	}
	if qty > available {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeyNotEnoughSpots, map[string]string{
				"available": strconv.Itoa(available),
			})))
		return
	}

	res.Draft.Quantity = qty
	res.Draft.Total = res.Draft.UnitPrice * float64(qty)
	res.Draft.Guests = nil
	res.Guest = GuestProgress{}
	res.Messages = append(res.Messages, guestNamePrompt(lang, 1))
	res.State = StateGuestName
}

func (m *Machine) stepGuestName(res *Result, text string) {
	lang := res.Draft.Language
	if text == "" {
		res.Messages = append(res.Messages, guestNamePrompt(lang, res.Guest.Index+1))
		return
	}

	res.Guest.Scratch.Name = text

	labels := i18n.Genders(lang)
	options := make([]Option, 0, len(labels))
	for i, label := range labels {
		options = append(options, Option{ID: optGenderPrefix + genderSuffixes[i], Label: label})
	}
	res.Messages = append(res.Messages, NewBotMessage(
		i18n.Resolve(lang, i18n.KeyGuestGender, map[string]string{"name": text}),
		options...))
	res.State = StateGuestGender
}

func (m *Machine) stepGuestGender(res *Result, in Input) {
	lang := res.Draft.Language

	suffix := strings.TrimPrefix(in.OptionID, optGenderPrefix)
	idx := -1
	for i, s := range genderSuffixes {
		if s == suffix {
			idx = i
			break
		}
	}
	if idx < 0 {
		res.Dropped = true
		res.UserEcho = ""
		res.Messages = nil
		return
	}
	res.Guest.Scratch.Gender = i18n.Genders(i18n.Default)[idx]

	res.Messages = append(res.Messages, NewBotMessage(
		i18n.Resolve(lang, i18n.KeyGuestAge, map[string]string{
			"name": res.Guest.Scratch.Name,
		})))
	res.State = StateGuestAge
}

func (m *Machine) stepGuestAge(res *Result, text string) {
	lang := res.Draft.Language

	age, err := strconv.Atoi(text)
	if err != nil || age < 1 || age > 120 {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeyAgeWarning, map[string]string{
				"name": res.Guest.Scratch.Name,
			})))
		return
	}

	res.Guest.Scratch.Age = age
	res.Draft.Guests = append(res.Draft.Guests, res.Guest.Scratch)

	if len(res.Draft.Guests) < res.Draft.Quantity {
		res.Guest = GuestProgress{Index: res.Guest.Index + 1}
		res.Messages = append(res.Messages, guestNamePrompt(lang, res.Guest.Index+1))
		res.State = StateGuestName
		return
	}

	res.Guest = GuestProgress{}
	res.Messages = append(res.Messages, ConfirmPrompt(lang, res.Draft))
	res.State = StatePaymentConfirm
}

// ConfirmPrompt builds the payment confirmation message for a completed
// draft. Also used to re-offer the step after a gateway failure.
func ConfirmPrompt(language string, draft BookingDraft) Message {
	return NewBotMessage(
		i18n.Resolve(language, i18n.KeyTotal, map[string]string{
			"qty":   strconv.Itoa(draft.Quantity),
			"total": formatAmount(draft.Total),
		}),
		Option{ID: OptPayConfirm, Label: i18n.Resolve(language, i18n.KeyConfirmPay, nil)},
		Option{ID: OptPayCancel, Label: i18n.Resolve(language, i18n.KeyCancel, nil)},
	)
}

func (m *Machine) stepPaymentConfirm(res *Result, in Input, text string) {
	lang := res.Draft.Language

	if in.OptionID == OptPayConfirm || isAffirmative(text) {
		res.Messages = append(res.Messages, NewBotMessage(
			i18n.Resolve(lang, i18n.KeyPaying, nil)))
		res.State = StatePaying
		res.BeginPayment = true
		return
	}

	res.Messages = append(res.Messages, NewBotMessage(
		i18n.Resolve(lang, i18n.KeyNoted, nil)))
	res.State = StateGreeting
	res.Declined = true
}

func (m *Machine) openExperiences(ctx context.Context) []Experience {
	all, err := m.catalog.Experiences(ctx)
	if err != nil {
		m.log.Warn("Failed to fetch experiences", zap.Error(err))
		return nil
	}
	open := make([]Experience, 0, len(all))
	for _, exp := range all {
		if exp.Available == nil || *exp.Available > 0 {
			open = append(open, exp)
		}
	}
	return open
}

func isAffirmative(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range affirmatives {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func findOption(options []Option, id string) (Option, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// languagePrompt builds the picker: the first few languages plus "More", or
// the full list once expanded.
func languagePrompt(language string, full bool) Message {
	names := i18n.Languages()
	options := make([]Option, 0, len(names)+1)
	shown := names
	if !full && len(names) > initialLanguageCount {
		shown = names[:initialLanguageCount]
	}
	for _, name := range shown {
		options = append(options, Option{ID: optLangPrefix + name, Label: name})
	}
	if !full && len(names) > initialLanguageCount {
		options = append(options, Option{
			ID:    OptLangMore,
			Label: i18n.Resolve(language, i18n.KeyMore, nil),
		})
	}
	return NewBotMessage(i18n.Resolve(language, i18n.KeyLangSelect, nil), options...)
}

func datePrompt(language, ticketType string) Message {
	return NewBotMessage(
		i18n.Resolve(language, i18n.KeyDate, map[string]string{"type": ticketType}),
		Option{ID: OptDatePicker, Label: ""},
	)
}

func guestNamePrompt(language string, ordinal int) Message {
	return NewBotMessage(i18n.Resolve(language, i18n.KeyGuestName, map[string]string{
		"index": strconv.Itoa(ordinal),
	}))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
