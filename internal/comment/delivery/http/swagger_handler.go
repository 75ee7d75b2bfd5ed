package http

// CreateProductComment godoc
// @Summary Comment on a product
// @Description Add a comment to a product
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{content=string} true "Comment data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /products/{id}/comments [post]
func (h *CommentHandler) CreateProductCommentDoc() {}

// ListProductComments godoc
// @Summary List product comments
// @Description Walk a product's comments newest-first; next_cursor zero means the end
// @Tags Comments
// @Produce json
// @Param id path int true "Product ID"
// @Param cursor query int false "Cursor from the previous page"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} object{success=bool,data=object{comments=array,next_cursor=int}}
// @Router /products/{id}/comments [get]
func (h *CommentHandler) ListProductCommentsDoc() {}

// CreateArticleComment godoc
// @Summary Comment on an article
// @Description Add a comment to an article
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body object{content=string} true "Comment data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /articles/{id}/comments [post]
func (h *CommentHandler) CreateArticleCommentDoc() {}

// ListArticleComments godoc
// @Summary List article comments
// @Description Walk an article's comments newest-first; next_cursor zero means the end
// @Tags Comments
// @Produce json
// @Param id path int true "Article ID"
// @Param cursor query int false "Cursor from the previous page"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} object{success=bool,data=object{comments=array,next_cursor=int}}
// @Router /articles/{id}/comments [get]
func (h *CommentHandler) ListArticleCommentsDoc() {}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Replace a comment's content (author only)
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body object{content=string} true "New content"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /comments/{id} [patch]
func (h *CommentHandler) UpdateCommentDoc() {}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Delete a comment by ID (author only)
// @Tags Comments
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204 {string} string "No Content"
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteCommentDoc() {}
