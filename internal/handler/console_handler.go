package handler

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gin-gonic/gin/render"
	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/logger"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stemsi/asts-console/internal/timetable"
)

//go:embed templates/*.html static/*
var consoleFS embed.FS

// ConsoleAssets serves the console stylesheet.
func ConsoleAssets() http.FileSystem {
	sub, err := fs.Sub(consoleFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

const (
	dashboardSubmissions = 10
	// formRowCount is the number of blank unit lines offered by list forms.
	formRowCount = 4
)

// ConsoleHandler renders the server-side admin console.
type ConsoleHandler struct {
	refService *service.ReferenceService
	ttService  *service.TimetableService
	logService *service.SubmissionLogService
	years      func() []int
	tmpl       *template.Template
	log        zerolog.Logger
}

// NewConsoleHandler parses the embedded templates. years supplies the
// academic years offered by year pickers.
func NewConsoleHandler(
	refService *service.ReferenceService,
	ttService *service.TimetableService,
	logService *service.SubmissionLogService,
	years func() []int,
	log zerolog.Logger,
) *ConsoleHandler {
	tmpl := template.Must(template.New("console").Funcs(template.FuncMap{
		"placementStyle": placementStyle,
		"legendStyle":    legendStyle,
	}).ParseFS(consoleFS, "templates/*.html"))

	return &ConsoleHandler{
		refService: refService,
		ttService:  ttService,
		logService: logService,
		years:      years,
		tmpl:       tmpl,
		log:        log.With().Str("component", "console_handler").Logger(),
	}
}

// ─── Page model ─────────────────────────────────────────────────────

type flash struct {
	OK   bool
	Text string
}

type option struct {
	Value string
	Label string
}

type fieldView struct {
	field
	Value   string
	Checked bool
	Choices []option
}

type formView struct {
	Fields  []fieldView
	Columns []fieldView
	Lines   [][]fieldView
}

type timetableView struct {
	Query    model.TimetableQuery
	Queried  bool
	Mode     timetable.Mode
	Data     *model.TimetableData
	Grid     timetable.Grid
	Detail   *timetable.ClassDetail
	Legend   []legendEntry
	BaseHref string
	ModeHref string
}

type legendEntry struct {
	Type  string
	Color timetable.Color
}

type educatorView struct {
	Query   model.EducatorTimetableQuery
	Queried bool
	Data    *model.TimetableData
	Rows    []timetable.ListRow
}

type generateView struct {
	Year     string
	Semester string
}

type dashboardView struct {
	Enabled     bool
	Submissions []model.SubmissionLog
}

type page struct {
	View      string
	Title     string
	Menu      []menuGroup
	Flash     *flash
	Notices   []string
	Years     []option
	Semesters []option
	Weekdays  []option

	Form      *formView
	Timetable *timetableView
	Educator  *educatorView
	Generate  *generateView
	Dashboard *dashboardView
}

func (h *ConsoleHandler) newPage(view, title string) *page {
	years := h.years()
	yearOpts := make([]option, len(years))
	for i, y := range years {
		s := strconv.Itoa(y)
		yearOpts[i] = option{s, s}
	}
	return &page{
		View:      view,
		Title:     title,
		Menu:      menu,
		Years:     yearOpts,
		Semesters: semesterOptions,
		Weekdays:  weekdayOptions,
	}
}

var semesterOptions = []option{{"1", "Semester 1"}, {"2", "Semester 2"}}

var weekdayOptions = func() []option {
	out := make([]option, len(timetable.Days))
	for i, d := range timetable.Days {
		out[i] = option{strconv.Itoa(d.Number), d.Name}
	}
	return out
}()

// ─── Routes ─────────────────────────────────────────────────────────

// Index godoc
// GET /console
func (h *ConsoleHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/console/"+viewDashboard)
}

// Show godoc
// GET /console/:view
func (h *ConsoleHandler) Show(c *gin.Context) {
	view := resolveView(c.Param("view"))

	switch view {
	case viewDashboard:
		h.dashboard(c)
	case viewGeneralTimetable:
		h.generalTimetable(c)
	case viewEducatorTimetable:
		h.educatorTimetable(c)
	case viewGenerateTimetable:
		p := h.newPage(view, "Generate Timetable")
		p.Generate = &generateView{}
		h.render(c, http.StatusOK, p)
	default:
		def, ok := formDefs[view]
		if !ok {
			h.render(c, http.StatusOK, h.newPage(view, "Content for "+view))
			return
		}
		p := h.newPage(view, def.Title)
		p.Form = h.buildForm(c, p, def, nil)
		h.render(c, http.StatusOK, p)
	}
}

// Submit godoc
// POST /console/:view
// Forwards a form to the backend and re-renders it with the outcome.
func (h *ConsoleHandler) Submit(c *gin.Context) {
	view := resolveView(c.Param("view"))

	switch view {
	case viewGeneralTimetable:
		h.generalTimetable(c)
		return
	case viewEducatorTimetable:
		h.educatorTimetable(c)
		return
	case viewGenerateTimetable:
		h.generate(c)
		return
	}

	def, ok := formDefs[view]
	if !ok {
		h.render(c, http.StatusNotFound, h.newPage(view, "Content for "+view))
		return
	}

	p := h.newPage(view, def.Title)
	err := def.submit(h, c)
	status := http.StatusOK
	var keep url.Values
	if err != nil {
		status = consoleStatus(err)
		keep = c.Request.PostForm
		p.Flash = &flash{Text: "❌ Error: " + errorText(err)}
		log := logger.For(c.Request.Context(), h.log)
		log.Debug().Err(err).Str("view", view).Msg("form rejected")
	} else {
		p.Flash = &flash{OK: true, Text: "✅ " + successMessage(view)}
	}
	p.Form = h.buildForm(c, p, def, keep)
	h.render(c, status, p)
}

// ─── Views ──────────────────────────────────────────────────────────

func (h *ConsoleHandler) dashboard(c *gin.Context) {
	p := h.newPage(viewDashboard, "Dashboard")
	p.Dashboard = &dashboardView{Enabled: h.logService.Enabled()}
	if p.Dashboard.Enabled {
		logs, err := h.logService.Recent(c.Request.Context(), dashboardSubmissions)
		if err != nil {
			p.Notices = append(p.Notices, "Could not load recent submissions: "+errorText(err))
		}
		p.Dashboard.Submissions = logs
	}
	h.render(c, http.StatusOK, p)
}

func (h *ConsoleHandler) generalTimetable(c *gin.Context) {
	p := h.newPage(viewGeneralTimetable, "General Timetable")
	tv := &timetableView{Legend: legend()}
	p.Timetable = tv

	_ = c.ShouldBindWith(&tv.Query, binding.Form)
	tv.Query.Normalize()
	tv.Mode = timetable.ParseMode(c.Request.FormValue("mode"))

	if tv.Query.OfferingYear == "" && tv.Query.OfferingSemester == "" {
		h.render(c, http.StatusOK, p)
		return
	}
	tv.Queried = true

	data, err := h.ttService.Query(c.Request.Context(), tv.Query)
	if err != nil {
		p.Flash = &flash{Text: "❌ Error: " + errorText(err)}
		h.render(c, consoleStatus(err), p)
		return
	}
	tv.Data = data
	tv.Grid = timetable.BuildGrid(data.ClassList, tv.Mode)

	base := timetableQueryValues(tv.Query)
	withMode := cloneValues(base)
	withMode.Set("mode", string(tv.Mode))
	tv.BaseHref = "?" + withMode.Encode()

	toggled := cloneValues(base)
	if tv.Mode == timetable.ModeCompact {
		toggled.Set("mode", string(timetable.ModeDetailed))
	} else {
		toggled.Set("mode", string(timetable.ModeCompact))
	}
	tv.ModeHref = "?" + toggled.Encode()

	if raw := c.Request.FormValue("detail"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < len(data.ClassList) {
			d := timetable.Detail(data.ClassList[i])
			tv.Detail = &d
		}
	}
	h.render(c, http.StatusOK, p)
}

func (h *ConsoleHandler) educatorTimetable(c *gin.Context) {
	p := h.newPage(viewEducatorTimetable, "Educator Timetable")
	ev := &educatorView{}
	p.Educator = ev

	_ = c.ShouldBindWith(&ev.Query, binding.Form)
	ev.Query.Normalize()
	if ev.Query.OfferingYear == "" && ev.Query.OfferingSemester == "" && ev.Query.EducatorID == "" {
		h.render(c, http.StatusOK, p)
		return
	}
	ev.Queried = true

	data, err := h.ttService.EducatorTimetable(c.Request.Context(), ev.Query)
	if err != nil {
		p.Flash = &flash{Text: "❌ Error: " + errorText(err)}
		h.render(c, consoleStatus(err), p)
		return
	}
	ev.Data = data
	ev.Rows = timetable.Rows(data.ClassList)
	h.render(c, http.StatusOK, p)
}

func (h *ConsoleHandler) generate(c *gin.Context) {
	p := h.newPage(viewGenerateTimetable, "Generate Timetable")
	var req model.GenerateTimetableRequest
	_ = c.ShouldBindWith(&req, binding.FormPost)
	req.Normalize()
	p.Generate = &generateView{Year: req.Year, Semester: req.Semester}

	err := h.ttService.Generate(c.Request.Context(), req)
	var re *backend.ResultError
	switch {
	case err == nil:
		p.Flash = &flash{OK: true, Text: "✅ " + generateSuccessMessage}
	case errors.As(err, &re):
		p.Flash = &flash{Text: "❌ Failed: " + re.Error()}
	case errors.Is(err, service.ErrGenerationIncomplete):
		p.Flash = &flash{Text: "❌ Failed: " + err.Error()}
	case errors.Is(err, backend.ErrUnavailable):
		p.Flash = &flash{Text: "❌ Request error: " + err.Error()}
	default:
		p.Flash = &flash{Text: "❌ Error: " + errorText(err)}
	}
	status := http.StatusOK
	if err != nil {
		status = consoleStatus(err)
	}
	h.render(c, status, p)
}

// ─── Helpers ────────────────────────────────────────────────────────

// buildForm resolves field options and fills values from keep. A nil keep
// renders an empty form.
func (h *ConsoleHandler) buildForm(c *gin.Context, p *page, def formDef, keep url.Values) *formView {
	fv := &formView{}
	for _, f := range def.Fields {
		v := fieldView{field: f, Value: keep.Get(f.Name)}
		v.Checked = f.Type == "checkbox" && v.Value == "true"
		v.Choices = h.choices(c, p, f.Options)
		fv.Fields = append(fv.Fields, v)
	}

	if len(def.Rows) > 0 {
		lines := formRowCount
		for _, col := range def.Rows {
			lines = max(lines, len(keep[col.Name]))
		}
		for _, col := range def.Rows {
			fv.Columns = append(fv.Columns, fieldView{field: col, Choices: h.choices(c, p, col.Options)})
		}
		for i := 0; i < lines; i++ {
			line := make([]fieldView, len(fv.Columns))
			for j, col := range fv.Columns {
				col.Value = valueAt(keep[col.Name], i)
				line[j] = col
			}
			fv.Lines = append(fv.Lines, line)
		}
	}
	return fv
}

// choices resolves an option source. Backend-provided lists that fail to
// load are left empty with a notice on the page.
func (h *ConsoleHandler) choices(c *gin.Context, p *page, source string) []option {
	switch source {
	case optYears:
		return p.Years
	case optSemesters:
		return p.Semesters
	case optWeekdays:
		return p.Weekdays
	case optUnitLevels:
		out := make([]option, 0, model.MaxUnitLevel)
		for l := model.MinUnitLevel; l <= model.MaxUnitLevel; l++ {
			s := strconv.Itoa(l)
			out = append(out, option{s, "Level " + s})
		}
		return out
	case optUnitStatuses:
		return []option{{"ACTIVE", "Active"}, {"INACTIVE", "Inactive"}}
	case optVenueTypes:
		types, err := h.refService.ListVenueTypes(c.Request.Context())
		if err != nil {
			p.Notices = append(p.Notices, "Could not load venue types: "+errorText(err))
		}
		return stringOptions(types)
	case optPositionTypes:
		positions, err := h.refService.ListPositionTypes(c.Request.Context())
		if err != nil {
			p.Notices = append(p.Notices, "Could not load positions: "+errorText(err))
		}
		return stringOptions(positions)
	}
	return nil
}

func (h *ConsoleHandler) render(c *gin.Context, status int, p *page) {
	c.Render(status, render.HTML{Template: h.tmpl, Name: "layout", Data: p})
}

func stringOptions(values []string) []option {
	out := make([]option, len(values))
	for i, v := range values {
		out[i] = option{v, v}
	}
	return out
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func legend() []legendEntry {
	out := make([]legendEntry, len(timetable.Legend))
	for i, l := range timetable.Legend {
		out[i] = legendEntry{Type: l.Type, Color: l.Color}
	}
	return out
}

func timetableQueryValues(q model.TimetableQuery) url.Values {
	v := url.Values{}
	v.Set("offeringYear", q.OfferingYear)
	v.Set("offeringSemester", q.OfferingSemester)
	if q.Day != "" {
		v.Set("day", q.Day)
	}
	if q.UnitCode != "" {
		v.Set("unitCode", q.UnitCode)
	}
	return v
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// errorText is the user-facing text of a failed call: the backend's
// resultMessage verbatim for rejections.
func errorText(err error) string {
	var fe *service.FieldError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return backend.Message(err)
}

func consoleStatus(err error) int {
	var fe *service.FieldError
	var re *backend.ResultError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest
	case errors.As(err, &re), errors.Is(err, service.ErrGenerationIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, backend.ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func placementStyle(pl timetable.Placement) template.CSS {
	return template.CSS(fmt.Sprintf("height:%dpx;background:%s;border-color:%s",
		pl.Height, pl.Color.Background, pl.Color.Border))
}

func legendStyle(c timetable.Color) template.CSS {
	return template.CSS(fmt.Sprintf("background:%s;border-color:%s", c.Background, c.Border))
}
