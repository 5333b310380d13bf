package handlers

// Form fields are pointers so that a field sent empty is accepted and only a missing one is rejected

// IDRequest accepts only ids the database can store
type IDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type UserRequest struct {
	FirstName *string `form:"first_name" binding:"required"`
	LastName  *string `form:"last_name" binding:"required"`
	ImageURL  *string `form:"image_url" binding:"required"`
}

type PostRequest struct {
	Title   *string `form:"title" binding:"required"`
	Content *string `form:"content" binding:"required"`
}
