package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tebramedicals/medtech-site/internal/domain"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/content"
	"github.com/tebramedicals/medtech-site/internal/metrics"
	"go.uber.org/zap"
)

// contactFields lists the form inputs read from a POST /contact body.
var contactFields = []string{
	domain.FieldName,
	domain.FieldEmail,
	domain.FieldCompany,
	domain.FieldPhone,
	domain.FieldSubject,
	domain.FieldMessage,
}

// pageData is the root value handed to every page template.
type pageData struct {
	SiteName    string
	Title       string
	Description string
	Path        string
	Nav         []domain.NavLink
	Menu        domain.MenuState
	MenuHref    string
	Footer      domain.Footer
	SceneJSON   string
	MotionJSON  string
	Content     any
}

type categoryOption struct {
	Label    string
	Href     string
	Selected bool
}

type productsView struct {
	State      domain.FilterState
	Categories []categoryOption
	Products   []domain.ProductRecord
}

type contactView struct {
	Page      domain.ContactPage
	Form      domain.ContactForm
	Missing   map[string]bool
	Fields    []string
	Submitted bool
	Error     string
}

// HomePage renders "/".
func (h *Handler) HomePage(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", "Home", content.Home())
}

// AboutPage renders "/about".
func (h *Handler) AboutPage(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", "About Us", content.About())
}

// ProductsPage renders the filtered catalog. The q and category parameters
// drive the filter; an empty result shows "No products found".
func (h *Handler) ProductsPage(c *gin.Context) {
	state := filterStateFromQuery(c)
	products := h.catalog.Filter(c.Request.Context(), state)

	h.render(c, http.StatusOK, "products.html", "Products", productsView{
		State:      state,
		Categories: categoryOptions(h.catalog.Categories().Labels, state),
		Products:   products,
	})
}

// ContactPage renders the empty contact form, or the confirmation after a redirect.
func (h *Handler) ContactPage(c *gin.Context) {
	h.render(c, http.StatusOK, "contact.html", "Contact", contactView{
		Page:      content.Contact(),
		Submitted: c.Query("submitted") == "1",
	})
}

// SubmitContactForm handles the HTML form post and redirects on success.
func (h *Handler) SubmitContactForm(c *gin.Context) {
	view := contactView{Page: content.Contact()}

	if err := c.Request.ParseForm(); err != nil {
		view.Error = "The form could not be read. Please try again."
		h.render(c, http.StatusBadRequest, "contact.html", "Contact", view)
		return
	}

	for _, field := range contactFields {
		if err := view.Form.Set(field, c.Request.PostForm.Get(field)); err != nil {
			h.logger.Warn("ignoring contact field", zap.Error(err))
		}
	}

	inquiry, err := h.contact.Submit(c.Request.Context(), view.Form)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			view.Fields = verr.Fields
			view.Missing = make(map[string]bool, len(verr.Fields))
			for _, f := range verr.Fields {
				view.Missing[f] = true
			}
			view.Error = "Please fill in: " + strings.Join(verr.Fields, ", ")
			h.render(c, http.StatusBadRequest, "contact.html", "Contact", view)
			return
		}
		h.logger.Error("contact submission failed", zap.Error(err), zap.String("request_id", RequestID(c)))
		view.Error = "Your message could not be sent. Please try again later."
		h.render(c, http.StatusInternalServerError, "contact.html", "Contact", view)
		return
	}

	h.logger.Debug("contact inquiry accepted", zap.String("inquiry_id", inquiry.ID.String()))
	c.Redirect(http.StatusSeeOther, content.PathContact+"?submitted=1")
}

// NotFound answers unmatched routes: JSON under /api, an HTML page elsewhere.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.render(c, http.StatusNotFound, "not_found.html", "Page Not Found", nil)
}

func (h *Handler) render(c *gin.Context, status int, name, title string, data any) {
	path := c.Request.URL.Path

	menu := domain.MenuState{}
	if c.Query("menu") == "open" {
		menu.Toggle()
	}

	page := pageData{
		SiteName:    content.SiteName,
		Title:       title,
		Description: content.SiteDescription,
		Path:        path,
		Nav:         content.Navigation(path),
		Menu:        menu,
		MenuHref:    menuToggleHref(c.Request.URL, menu),
		Footer:      content.SiteFooter(h.now().Year()),
		SceneJSON:   h.marshalAttr(content.Scene(path)),
		MotionJSON:  h.marshalAttr(content.Reveal),
		Content:     data,
	}

	metrics.PageViews.WithLabelValues(strings.TrimSuffix(name, ".html")).Inc()
	c.HTML(status, name, page)
}

// marshalAttr encodes v for a data-* attribute. Nil values produce "".
func (h *Handler) marshalAttr(v any) string {
	if s, ok := v.(*domain.Scene); ok && s == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("failed to encode page attribute", zap.Error(err))
		return ""
	}
	return string(b)
}

// menuToggleHref is the link that flips the mobile menu, keeping other query parameters.
func menuToggleHref(u *url.URL, menu domain.MenuState) string {
	q := u.Query()
	if menu.Open {
		q.Del("menu")
	} else {
		q.Set("menu", "open")
	}
	if len(q) == 0 {
		return u.Path
	}
	return u.Path + "?" + q.Encode()
}

// categoryOptions builds the selector links, carrying the current query along.
func categoryOptions(labels []string, state domain.FilterState) []categoryOption {
	options := make([]categoryOption, 0, len(labels))
	for _, label := range labels {
		q := url.Values{}
		if state.SearchQuery != "" {
			q.Set("q", state.SearchQuery)
		}
		if label != domain.AllCategories {
			q.Set("category", label)
		}
		href := content.PathProducts
		if len(q) > 0 {
			href += "?" + q.Encode()
		}
		options = append(options, categoryOption{
			Label:    label,
			Href:     href,
			Selected: label == state.SelectedCategory,
		})
	}
	return options
}

var templateFuncs = template.FuncMap{
	"stars": func(n int) []int { return make([]int, n) },
	"join":  strings.Join,
}
