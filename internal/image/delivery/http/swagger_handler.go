package http

// Upload godoc
// @Summary Upload an image
// @Description Upload a jpg/jpeg/png image up to 5MB; returns its public URL
// @Tags Images
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} object{success=bool,data=object{url=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /images/upload [post]
func (h *ImageHandler) UploadDoc() {}

// PresignedURL godoc
// @Summary Issue a presigned upload URL
// @Description Issue a time-limited URL the client can PUT the image to directly
// @Tags Images
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{file_name=string} true "Original file name"
// @Success 200 {object} object{success=bool,data=object{url=string,key=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /images/presigned-url [post]
func (h *ImageHandler) PresignedURLDoc() {}
