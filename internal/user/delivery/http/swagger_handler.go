package http

// Register godoc
// @Summary Register a new user
// @Description Create a new market account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,nickname=string,password=string,image=string} true "Registration data"
// @Success 201 {object} object{success=bool,message=string,data=object{id=int,email=string,nickname=string,image=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary User login
// @Description Authenticate and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{success=bool,data=object{token=string,user=object}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetMe godoc
// @Summary Get current user profile
// @Description Get the authenticated user's profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{id=int,email=string,nickname=string,image=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /users/me [get]
func (h *UserHandler) GetMeDoc() {}

// UpdateMe godoc
// @Summary Update current user profile
// @Description Partially update nickname, image or password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{nickname=string,image=string,password=string} true "Fields to update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /users/me [patch]
func (h *UserHandler) UpdateMeDoc() {}
