package http

// CreateArticle godoc
// @Summary Create a new article
// @Description Post an article to the community board
// @Tags Articles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{title=string,content=string,image=string} true "Article data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /articles [post]
func (h *ArticleHandler) CreateArticleDoc() {}

// ListArticles godoc
// @Summary List articles
// @Description Get a paginated list of articles with optional keyword search and ordering
// @Tags Articles
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param order_by query string false "Order: recent or like"
// @Param keyword query string false "Keyword to match against title and content"
// @Success 200 {object} object{success=bool,data=object{articles=array,total=int,page=int,page_size=int}}
// @Router /articles [get]
func (h *ArticleHandler) ListArticlesDoc() {}

// GetArticle godoc
// @Summary Get article by ID
// @Description Get a specific article; is_liked reflects the authenticated user when a token is sent
// @Tags Articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticleDoc() {}

// UpdateArticle godoc
// @Summary Update an article
// @Description Partially update an article (author only)
// @Tags Articles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body object{title=string,content=string,image=string} true "Fields to update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /articles/{id} [patch]
func (h *ArticleHandler) UpdateArticleDoc() {}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Delete an article by ID (author only)
// @Tags Articles
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204 {string} string "No Content"
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticleDoc() {}

// LikeArticle godoc
// @Summary Like an article
// @Description Add the authenticated user's like to an article
// @Tags Articles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /articles/{id}/like [post]
func (h *ArticleHandler) LikeArticleDoc() {}

// UnlikeArticle godoc
// @Summary Unlike an article
// @Description Remove the authenticated user's like from an article
// @Tags Articles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /articles/{id}/like [delete]
func (h *ArticleHandler) UnlikeArticleDoc() {}
