package handlers

import (
	"net/http"

	"orderalone/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultMenuLimit = 100
	maxMenuLimit     = 1000
	maxImageBytes    = 5 << 20
)

type MenuHandler struct {
	menuService services.MenuServiceInterface
}

func NewMenuHandler(menuService services.MenuServiceInterface) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var req services.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := h.menuService.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, menu)
}

func (h *MenuHandler) ListMenus(c *gin.Context) {
	limit, err := parseLimit(c, defaultMenuLimit, maxMenuLimit)
	if err != nil {
		handleError(c, err)
		return
	}

	menus, err := h.menuService.List(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, menus)
}

func (h *MenuHandler) ListMenuSummaries(c *gin.Context) {
	limit, err := parseLimit(c, defaultMenuLimit, maxMenuLimit)
	if err != nil {
		handleError(c, err)
		return
	}

	summaries, err := h.menuService.ListSummaries(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *MenuHandler) GetMenuByID(c *gin.Context) {
	menuID, ok := parseID(c, "id", "menu")
	if !ok {
		return
	}

	menu, err := h.menuService.FindMenu(c.Request.Context(), menuID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	menuID, ok := parseID(c, "id", "menu")
	if !ok {
		return
	}

	var req services.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := h.menuService.Update(c.Request.Context(), menuID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	menuID, ok := parseID(c, "id", "menu")
	if !ok {
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), menuID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted successfully"})
}

// UploadImage takes a multipart "image" field and returns the stored URL.
func (h *MenuHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file required"})
		return
	}
	if file.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer src.Close()

	url, err := h.menuService.UploadImage(c.Request.Context(), file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
