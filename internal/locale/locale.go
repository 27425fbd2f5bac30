// Package locale holds the Arabic and English strings the backend produces
// and negotiates which one a request gets.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/aliskhannn/estate-crm/internal/model"
)

// Lang is a supported UI language.
type Lang string

const (
	Arabic  Lang = "ar"
	English Lang = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// Parse maps a language code to a supported language, falling back to def.
func Parse(code string, def Lang) Lang {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ar":
		return Arabic
	case "en":
		return English
	default:
		return def
	}
}

// Negotiate picks the language from an explicit code first, then the Accept-Language header.
func Negotiate(code, acceptLanguage string, def Lang) Lang {
	if code != "" {
		return Parse(code, def)
	}

	if acceptLanguage == "" {
		return def
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}

	if idx == 1 {
		return English
	}

	return Arabic
}

// RTL reports whether the language is written right to left.
func (l Lang) RTL() bool {
	return l == Arabic
}

type pair struct {
	ar, en string
}

func (p pair) in(l Lang) string {
	if l == English {
		return p.en
	}

	return p.ar
}

var statusLabels = map[model.Status]pair{
	model.StatusNew:             {"جديد", "New"},
	model.StatusPotential:       {"محتمل", "Potential"},
	model.StatusInterested:      {"مهتم", "Interested"},
	model.StatusResponded:       {"تم الرد", "Responded"},
	model.StatusNoResponse:      {"لم يرد", "No Response"},
	model.StatusScheduled:       {"تم تحديد موعد", "Scheduled"},
	model.StatusPostMeeting:     {"بعد الاجتماع", "Post Meeting"},
	model.StatusWhatsappContact: {"تواصل واتساب", "WhatsApp Contact"},
	model.StatusFacebookContact: {"تواصل فيسبوك", "Facebook Contact"},
	model.StatusBooked:          {"محجوز", "Booked"},
	model.StatusCancelled:       {"ملغي", "Cancelled"},
	model.StatusSold:            {"تم البيع", "Sold"},
	model.StatusPostponed:       {"مؤجل", "Postponed"},
	model.StatusResale:          {"إعادة بيع", "Resale"},
}

// StatusLabel returns the display label of a status.
func StatusLabel(l Lang, s model.Status) string {
	p, ok := statusLabels[s]
	if !ok {
		return string(s)
	}

	return p.in(l)
}

// StatusFromLabel accepts a status key or its label in either language.
func StatusFromLabel(raw string) (model.Status, error) {
	if s, err := model.ParseStatus(raw); err == nil {
		return s, nil
	}

	v := strings.TrimSpace(raw)
	for s, p := range statusLabels {
		if v == p.ar || strings.EqualFold(v, p.en) {
			return s, nil
		}
	}

	return model.ParseStatus(raw)
}

// DueLayout is how due times appear in notification text.
const DueLayout = "2006-01-02 15:04"

// DelayedTitle is the heading of a delayed-client notification.
func DelayedTitle(l Lang, clientName string) string {
	if l == English {
		return fmt.Sprintf("Overdue follow-up: %s", clientName)
	}

	return fmt.Sprintf("متابعة متأخرة: %s", clientName)
}

// DelayedMessage is the body of a delayed-client notification.
func DelayedMessage(l Lang, clientName, actionType string, due time.Time, assignee string) string {
	when := due.Format(DueLayout)
	if l == English {
		return fmt.Sprintf("%s, the %q action for client %s was due at %s.", assignee, actionType, clientName, when)
	}

	return fmt.Sprintf("%s، حان موعد إجراء \"%s\" للعميل %s في %s.", assignee, actionType, clientName, when)
}

var (
	genericError = pair{
		"حدث خطأ أثناء تنفيذ العملية، حاول مرة أخرى",
		"Something went wrong, please try again",
	}
	blockedRemediation = pair{
		"تعذر الاتصال بالخادم. قد يكون برنامج حماية أو جدار ناري على جهازك يمنع الاتصال، يرجى تعطيله ثم إعادة المحاولة",
		"Could not reach the server. Security software or a firewall on this machine may be blocking the connection; disable it and try again",
	}
	unauthorized = pair{
		"انتهت الجلسة، يرجى تسجيل الدخول مرة أخرى",
		"Your session has expired, please sign in again",
	}
)

// GenericError is the toast text for a failed backend operation.
func GenericError(l Lang) string { return genericError.in(l) }

// BlockedRemediation tells the user how to recover from blocked connectivity.
func BlockedRemediation(l Lang) string { return blockedRemediation.in(l) }

// Unauthorized is shown before the dashboard redirects to the login page.
func Unauthorized(l Lang) string { return unauthorized.in(l) }

var headers = map[string]pair{
	"name":           {"الاسم", "Name"},
	"phone":          {"الهاتف", "Phone"},
	"email":          {"البريد الإلكتروني", "Email"},
	"city":           {"المدينة", "City"},
	"project":        {"المشروع", "Project"},
	"budget":         {"الميزانية", "Budget"},
	"salesPerson":    {"مندوب المبيعات", "Sales Person"},
	"contactMethod":  {"طريقة التواصل", "Contact Method"},
	"facebook":       {"فيسبوك", "Facebook"},
	"campaign":       {"الحملة", "Campaign"},
	"status":         {"الحالة", "Status"},
	"rating":         {"التقييم", "Rating"},
	"nextActionDate": {"موعد الإجراء التالي", "Next Action Date"},
	"nextActionType": {"الإجراء التالي", "Next Action"},
	"createdAt":      {"تاريخ الإضافة", "Created At"},
}

// Header returns the column title of a client field in an exported sheet.
func Header(l Lang, field string) string {
	p, ok := headers[field]
	if !ok {
		return field
	}

	return p.in(l)
}

// FieldFromHeader maps a column title in either language, or a field key, back to the field.
func FieldFromHeader(title string) (string, bool) {
	v := strings.TrimSpace(title)
	if _, ok := headers[v]; ok {
		return v, true
	}

	for field, p := range headers {
		if v == p.ar || strings.EqualFold(v, p.en) {
			return field, true
		}
	}

	return "", false
}

var sheetTitle = pair{"العملاء", "Clients"}

// SheetTitle names the worksheet of a client export.
func SheetTitle(l Lang) string { return sheetTitle.in(l) }
