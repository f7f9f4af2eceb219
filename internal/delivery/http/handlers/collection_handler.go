package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fundflow/collection-service/internal/delivery/http/dto/collection/request"
	"github.com/fundflow/collection-service/internal/delivery/http/dto/collection/response"
	donationresponse "github.com/fundflow/collection-service/internal/delivery/http/dto/donation/response"
	"github.com/fundflow/collection-service/internal/domain"
	"github.com/fundflow/collection-service/internal/usecase"
	donationusecase "github.com/fundflow/collection-service/internal/usecase/donation"
	collectiondto "github.com/fundflow/collection-service/internal/usecase/dto/collection"
	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	CollectionUsecase usecase.CollectionUsecase
	DonationUsecase   donationusecase.DonationUsecase
}

func NewCollectionHandler(collectionUsecase usecase.CollectionUsecase, donationUsecase donationusecase.DonationUsecase) *CollectionHandler {
	return &CollectionHandler{
		CollectionUsecase: collectionUsecase,
		DonationUsecase:   donationUsecase,
	}
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req request.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	collection, err := h.CollectionUsecase.CreateCollection(c.Request.Context(), &collectiondto.CreateCollectionInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		GoalAmount:     req.GoalAmount,
		Visibility:     req.Visibility,
		Deadline:       req.Deadline,
		CoverImage:     req.CoverImage,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
		OrganizerPhone: req.OrganizerPhone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create collection"})
		return
	}

	c.JSON(http.StatusOK, response.FromDomainCollection(collection))
}

func (h *CollectionHandler) ListCollections(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	collections, err := h.CollectionUsecase.ListCollections(c.Request.Context(), &collectiondto.ListCollectionsInput{
		Visibility: c.Query("visibility"),
		Category:   c.Query("category"),
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch collections"})
		return
	}

	out := make([]response.CollectionResponse, len(collections))
	for i, collection := range collections {
		out[i] = response.FromDomainCollection(collection)
	}

	c.JSON(http.StatusOK, out)
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	collection, err := h.CollectionUsecase.GetCollectionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch collection"})
		return
	}

	c.JSON(http.StatusOK, response.FromDomainCollection(collection))
}

func (h *CollectionHandler) GetCollectionDonations(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.DonationUsecase.ListCollectionDonations(c.Request.Context(), c.Param("id"), skip, limit)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch donations"})
		return
	}

	out := make([]donationresponse.DonationResponse, len(list.Donations))
	for i, donation := range list.Donations {
		out[i] = donationresponse.FromDomainDonation(donation)
	}

	c.JSON(http.StatusOK, out)
}

func (h *CollectionHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.CollectionUsecase.GetPlatformStats(c.Request.Context())
	if err != nil {
		// The dashboard widget tolerates zeros better than an error page.
		c.JSON(http.StatusOK, collectiondto.PlatformStats{})
		return
	}

	c.JSON(http.StatusOK, stats)
}

type category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var categories = []category{
	{ID: "celebration", Name: "Celebration", Icon: "party-popper"},
	{ID: "medical", Name: "Medical Emergency", Icon: "heart-pulse"},
	{ID: "festival", Name: "Festival", Icon: "sparkles"},
	{ID: "society", Name: "Society/Community", Icon: "home"},
	{ID: "social", Name: "Social Cause", Icon: "hand-heart"},
	{ID: "office", Name: "Office/Team", Icon: "briefcase"},
	{ID: "reunion", Name: "Reunion", Icon: "users"},
	{ID: "other", Name: "Other", Icon: "folder"},
}

func (h *CollectionHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
