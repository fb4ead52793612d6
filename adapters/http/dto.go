package http

import (
	"time"

	"github.com/khoahotran/devconnector/internal/application/usecase/profile"
	"github.com/khoahotran/devconnector/internal/domain/post"
	domainProfile "github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
)

// Auth DTOs

type registerRequest struct {
	Name     string `json:"name" binding:"required" msg:"Name is required"`
	Email    string `json:"email" binding:"required,email" msg:"need valid email"`
	Password string `json:"password" binding:"required,min=6" msg:"min length 6"`
}

// Every login input failure answers with the same message as bad credentials.
type loginRequest struct {
	Email    string `json:"email" binding:"required,email" msg:"wrong-credentials"`
	Password string `json:"password" binding:"required" msg:"wrong-credentials"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserDTO struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Date:   u.CreatedAt,
	}
}

// Profile DTOs

type UpsertProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	YouTube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	LinkedIn       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

// social carries only the links present in the request.
func (r *UpsertProfileRequest) social() domainProfile.SocialLinks {
	return domainProfile.SocialLinks{
		YouTube:   r.YouTube,
		Twitter:   r.Twitter,
		Facebook:  r.Facebook,
		LinkedIn:  r.LinkedIn,
		Instagram: r.Instagram,
	}
}

type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type ProfileOwnerDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ExperienceDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationDTO struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

type ProfileDTO struct {
	ID             string               `json:"id"`
	User           ProfileOwnerDTO      `json:"user"`
	Company        string               `json:"company"`
	Website        string               `json:"website"`
	Location       string               `json:"location"`
	Status         string               `json:"status"`
	Skills         []string             `json:"skills"`
	Bio            string               `json:"bio"`
	GithubUsername string               `json:"githubusername"`
	Experience     []ExperienceDTO      `json:"experience"`
	Education      []EducationDTO       `json:"education"`
	Social         domainProfile.Social `json:"social"`
	Date           time.Time            `json:"date"`
}

func ToProfileDTO(v *profile.ProfileView) ProfileDTO {
	p := v.Profile
	dto := ProfileDTO{
		ID:             p.ID.String(),
		User:           ProfileOwnerDTO{ID: p.UserID.String()},
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Skills:         p.Skills,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Social:         p.Social,
		Date:           p.CreatedAt,
	}
	if v.Owner != nil {
		dto.User.Name = v.Owner.Name
		dto.User.Avatar = v.Owner.Avatar
	}
	if dto.Skills == nil {
		dto.Skills = []string{}
	}

	dto.Experience = make([]ExperienceDTO, len(p.Experience))
	for i, e := range p.Experience {
		dto.Experience[i] = ExperienceDTO{
			ID:          e.ID.String(),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		}
	}
	dto.Education = make([]EducationDTO, len(p.Education))
	for i, e := range p.Education {
		dto.Education[i] = EducationDTO{
			ID:           e.ID.String(),
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From,
			To:           e.To,
			Current:      e.Current,
			Description:  e.Description,
		}
	}
	return dto
}

func ToProfileDTOs(views []*profile.ProfileView) []ProfileDTO {
	dtos := make([]ProfileDTO, len(views))
	for i, v := range views {
		dtos[i] = ToProfileDTO(v)
	}
	return dtos
}

// Post DTOs

type TextRequest struct {
	Text string `json:"text"`
}

type LikeDTO struct {
	User string `json:"user"`
}

type CommentDTO struct {
	ID     string    `json:"id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

type PostDTO struct {
	ID       string       `json:"id"`
	User     string       `json:"user"`
	Text     string       `json:"text"`
	Name     string       `json:"name"`
	Avatar   string       `json:"avatar"`
	Likes    []LikeDTO    `json:"likes"`
	Comments []CommentDTO `json:"comments"`
	Date     time.Time    `json:"date"`
}

func ToLikeDTOs(likes []post.Like) []LikeDTO {
	dtos := make([]LikeDTO, len(likes))
	for i, l := range likes {
		dtos[i] = LikeDTO{User: l.UserID.String()}
	}
	return dtos
}

func ToCommentDTOs(comments []post.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = CommentDTO{
			ID:     c.ID.String(),
			User:   c.UserID.String(),
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.CreatedAt,
		}
	}
	return dtos
}

func ToPostDTO(p *post.Post) PostDTO {
	return PostDTO{
		ID:       p.ID.String(),
		User:     p.UserID.String(),
		Text:     p.Text,
		Name:     p.Name,
		Avatar:   p.Avatar,
		Likes:    ToLikeDTOs(p.Likes),
		Comments: ToCommentDTOs(p.Comments),
		Date:     p.CreatedAt,
	}
}

func ToPostDTOs(posts []*post.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostDTO(p)
	}
	return dtos
}

type MessageResponse struct {
	Msg string `json:"msg"`
}
