package handlers

import (
	"net/http"
	"time"

	accountRepo "garagedesk/database/repository/account"
	"garagedesk/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler exposes customer account records.
type AccountHandler struct {
	Repo accountRepo.AccountRepository
}

func NewAccountHandler(repo accountRepo.AccountRepository) *AccountHandler {
	return &AccountHandler{Repo: repo}
}

// ListAccounts returns all accounts, or those matching ?reg= when given.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()
	if frag := c.Query("reg"); frag != "" {
		accounts, err := h.Repo.SearchByReg(ctx, frag)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, accounts)
		return
	}
	accounts, err := h.Repo.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if account.VehicleReg == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle registration is required"})
		return
	}
	account.ID = uuid.New().String()
	account.CreatedAt = time.Now()
	if err := h.Repo.Create(c.Request.Context(), &account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id := c.Param("id")
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	account.ID = id
	account.UpdatedAt = time.Now()
	if err := h.Repo.Update(c.Request.Context(), id, &account); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
