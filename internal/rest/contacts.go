package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dfryer1193/agenda/api"
	"github.com/dfryer1193/agenda/contacts/application"
	"github.com/dfryer1193/agenda/contacts/domain"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	contactsPath    = "/contacts/v1"
	emptyListNotice = "no contacts registered yet"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type ContactsHandler struct {
	service       *application.ContactService
	maxImageBytes int64
}

func NewContactsHandler(service *application.ContactService, maxImageBytes int64) *ContactsHandler {
	return &ContactsHandler{
		service:       service,
		maxImageBytes: maxImageBytes,
	}
}

func (h *ContactsHandler) RegisterRoutes(r gin.IRouter) {
	contactsV1 := r.Group(contactsPath)
	{
		contactsV1.GET("/", h.ListContacts)
		contactsV1.POST("/", h.SaveContact)
		contactsV1.GET("/:name", h.GetContact)
		contactsV1.GET("/:name/image", h.GetContactImage)
		contactsV1.DELETE("/:name", h.DeleteContact)
	}

	phonesV1 := r.Group("/phones/v1")
	{
		phonesV1.POST("/classify", h.ClassifyPhone)
	}
}

// SaveContact reads the name, phone and optional image upload from a form.
func (h *ContactsHandler) SaveContact(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")

	image, err := h.readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.service.Save(name, phone, image)
	var phoneErr *domain.InvalidPhoneError
	switch {
	case errors.Is(err, domain.ErrMissingField), errors.As(err, &phoneErr):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		log.Error().Err(err).Str("name", name).Msg("Failed to save contact")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save contact"})
		return
	}

	status := http.StatusOK
	if res.Outcome == domain.OutcomeAdded {
		status = http.StatusCreated
	}

	saved, _ := h.service.Find(name)
	c.JSON(status, api.SaveContactResponse{
		Status:  string(res.Outcome),
		Message: res.Outcome.Message(res.Name),
		Phone:   res.Classification.Message,
		Contact: toContact(h.service.BucketOf(name), saved),
	})
}

func (h *ContactsHandler) GetContact(c *gin.Context) {
	name := c.Param("name")

	contact, ok := h.service.Find(name)
	if !ok {
		c.JSON(http.StatusNotFound, notFound(name))
		return
	}

	c.JSON(http.StatusOK, toContact(h.service.BucketOf(name), contact))
}

func (h *ContactsHandler) GetContactImage(c *gin.Context) {
	name := c.Param("name")

	contact, ok := h.service.Find(name)
	if !ok {
		c.JSON(http.StatusNotFound, notFound(name))
		return
	}
	if !contact.HasImage() {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "contact has no image: " + name})
		return
	}

	c.Data(http.StatusOK, mimetype.Detect(contact.Image).String(), contact.Image)
}

func (h *ContactsHandler) DeleteContact(c *gin.Context) {
	name := c.Param("name")

	outcome := h.service.Delete(name)
	status := http.StatusOK
	if outcome == domain.OutcomeNotFound {
		status = http.StatusNotFound
	}

	c.JSON(status, api.StatusResponse{
		Status:  string(outcome),
		Message: outcome.Message(name),
	})
}

func (h *ContactsHandler) ListContacts(c *gin.Context) {
	entries := h.service.List()

	list := api.ContactList{
		Contacts: make([]api.Contact, 0, len(entries)),
	}
	for _, e := range entries {
		list.Contacts = append(list.Contacts, toContact(e.Bucket, e.Contact))
	}
	if len(list.Contacts) == 0 {
		list.Message = emptyListNotice
	}

	c.JSON(http.StatusOK, list)
}

func (h *ContactsHandler) ClassifyPhone(c *gin.Context) {
	req := &api.ClassifyRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	res := h.service.Classify(req.Phone)
	c.JSON(http.StatusOK, api.ClassifyResponse{
		Valid:   res.Valid,
		Class:   string(res.Class),
		Country: res.Country,
		Message: res.Message,
	})
}

// readImage returns nil when the form carries no image file.
func (h *ContactsHandler) readImage(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return nil, errors.New("image must be a png, jpg or jpeg file")
	}
	if fh.Size > h.maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", h.maxImageBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, h.maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image upload: %w", err)
	}
	if int64(len(content)) > h.maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", h.maxImageBytes)
	}

	return content, nil
}

func toContact(bucket int, c domain.Contact) api.Contact {
	imageURL := domain.DefaultAvatarURL
	if c.HasImage() {
		imageURL = contactsPath + "/" + url.PathEscape(c.Name) + "/image"
	}

	return api.Contact{
		Bucket:   bucket,
		Name:     c.Name,
		Phone:    c.Phone,
		HasImage: c.HasImage(),
		ImageURL: imageURL,
	}
}

func notFound(name string) api.StatusResponse {
	return api.StatusResponse{
		Status:  string(domain.OutcomeNotFound),
		Message: domain.OutcomeNotFound.Message(name),
	}
}
