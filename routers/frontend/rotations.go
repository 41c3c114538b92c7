package frontend

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_dashboard/entities"
	"github.com/unicsmcr/hs_dashboard/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	rotationsPath = "/rotations"

	invalidFormMessage = "Some fields are not properly filled"
)

func rotationURL(token string) string {
	return fmt.Sprintf("%s/%s", rotationsPath, url.PathEscape(token))
}

// HomePage lists the rotations of the current user
func (r *frontendRouter) HomePage(ctx *gin.Context) {
	session := getSession(ctx)

	rotations, err := r.rotationService.GetAllForCurrentUser(ctx.Request.Context())
	if err != nil {
		r.logger.Error("could not fetch rotations of current user", zap.String("username", session.Username), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
	}

	r.renderPage(ctx, http.StatusOK, homePage, homePageDataModel{
		Username:  session.Username,
		Rotations: rotations,
	})
}

func (r *frontendRouter) RotationsPage(ctx *gin.Context) {
	var filter entities.HTTPFilter
	err := ctx.ShouldBindQuery(&filter)
	if err != nil {
		r.logger.Debug("invalid rotation filter", zap.Error(err))
		filter = entities.HTTPFilter{}
	}

	page, err := r.rotationService.GetAll(ctx.Request.Context(), &filter)
	if err != nil {
		r.logger.Error("could not fetch rotations", zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
	}

	r.renderPage(ctx, http.StatusOK, rotationsPage, rotationsPageDataModel{
		Filter: filter,
		Page:   page,
	})
}

func (r *frontendRouter) CreateRotation(ctx *gin.Context) {
	var request entities.RotationRequest
	err := ctx.ShouldBind(&request)
	if err != nil {
		r.logger.Debug("invalid rotation form", zap.Error(err))
		r.sendToast(ctx, invalidFormMessage, entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationsPath)
		return
	}

	rotation, err := r.rotationService.Create(ctx.Request.Context(), request)
	if err != nil {
		r.logger.Error("could not create rotation", zap.String("name", request.Name), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationsPath)
		return
	}

	r.sendToast(ctx, fmt.Sprintf("Rotation %s created", request.Name), entities.ToastSuccess)
	if rotation == nil || rotation.Token == "" {
		r.logger.Warn("created rotation has no token", zap.String("name", request.Name))
		ctx.Redirect(http.StatusSeeOther, rotationsPath)
		return
	}
	ctx.Redirect(http.StatusSeeOther, rotationURL(rotation.Token))
}

// RotationPage shows a rotation with its projects, users and connected screens
func (r *frontendRouter) RotationPage(ctx *gin.Context) {
	token := ctx.Param("rotationToken")

	var data rotationPageDataModel
	group, groupCtx := errgroup.WithContext(ctx.Request.Context())
	group.Go(func() (err error) {
		data.Rotation, err = r.rotationService.GetByToken(groupCtx, token)
		return errors.Wrap(err, "could not fetch rotation")
	})
	group.Go(func() (err error) {
		data.RotationProjects, err = r.rotationService.GetRotationProjects(groupCtx, token)
		return errors.Wrap(err, "could not fetch rotation projects")
	})
	group.Go(func() (err error) {
		data.Users, err = r.rotationService.GetUsers(groupCtx, token)
		return errors.Wrap(err, "could not fetch rotation users")
	})
	group.Go(func() (err error) {
		data.WebsocketClients, err = r.rotationService.GetWebsocketClients(groupCtx, token)
		return errors.Wrap(err, "could not fetch rotation screens")
	})

	err := group.Wait()
	if err != nil {
		r.logger.Error("could not load rotation", zap.String("token", token), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationsPath)
		return
	}

	r.renderPage(ctx, http.StatusOK, rotationPage, data)
}

func (r *frontendRouter) UpdateRotation(ctx *gin.Context) {
	token := ctx.Param("rotationToken")

	var request entities.RotationRequest
	err := ctx.ShouldBind(&request)
	if err != nil {
		r.logger.Debug("invalid rotation form", zap.Error(err))
		r.sendToast(ctx, invalidFormMessage, entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	err = r.rotationService.Update(ctx.Request.Context(), token, request)
	if err != nil {
		r.logger.Error("could not update rotation", zap.String("token", token), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	r.sendToast(ctx, fmt.Sprintf("Rotation %s updated", request.Name), entities.ToastSuccess)
	ctx.Redirect(http.StatusSeeOther, rotationURL(token))
}

func (r *frontendRouter) DeleteRotation(ctx *gin.Context) {
	token := ctx.Param("rotationToken")

	err := r.rotationService.Delete(ctx.Request.Context(), token)
	if err != nil {
		r.logger.Error("could not delete rotation", zap.String("token", token), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	r.sendToast(ctx, "Rotation deleted", entities.ToastSuccess)
	ctx.Redirect(http.StatusSeeOther, rotationsPath)
}

// AddRotationProjects adds the dashboards of the form to the rotation.
// The form holds one rotationTime (in seconds) per projectToken.
func (r *frontendRouter) AddRotationProjects(ctx *gin.Context) {
	token := ctx.Param("rotationToken")

	projectTokens := ctx.PostFormArray("projectToken")
	rotationTimes := ctx.PostFormArray("rotationTime")
	if len(projectTokens) == 0 || len(projectTokens) != len(rotationTimes) {
		r.logger.Debug("invalid rotation projects form",
			zap.Int("project tokens", len(projectTokens)),
			zap.Int("rotation times", len(rotationTimes)))
		r.sendToast(ctx, invalidFormMessage, entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	requests := make([]entities.RotationProjectRequest, 0, len(projectTokens))
	for i, projectToken := range projectTokens {
		rotationTime, err := strconv.Atoi(rotationTimes[i])
		if err != nil || projectToken == "" || rotationTime <= 0 {
			r.logger.Debug("invalid rotation project", zap.String("project token", projectToken), zap.String("rotation time", rotationTimes[i]))
			r.sendToast(ctx, invalidFormMessage, entities.ToastDanger)
			ctx.Redirect(http.StatusSeeOther, rotationURL(token))
			return
		}

		requests = append(requests, entities.RotationProjectRequest{
			ProjectToken: projectToken,
			RotationTime: rotationTime,
		})
	}

	err := r.rotationService.AddProjects(ctx.Request.Context(), token, requests)
	if err != nil {
		r.logger.Error("could not add projects to rotation", zap.String("token", token), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	r.sendToast(ctx, "Dashboards added to the rotation", entities.ToastSuccess)
	ctx.Redirect(http.StatusSeeOther, rotationURL(token))
}

func (r *frontendRouter) AddRotationUser(ctx *gin.Context) {
	token := ctx.Param("rotationToken")

	username := ctx.PostForm("username")
	if username == "" {
		r.logger.Debug("username was not provided")
		r.sendToast(ctx, invalidFormMessage, entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	err := r.rotationService.AddUser(ctx.Request.Context(), token, username)
	if err != nil {
		r.logger.Error("could not add user to rotation", zap.String("token", token), zap.String("username", username), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	r.sendToast(ctx, fmt.Sprintf("User %s added to the rotation", username), entities.ToastSuccess)
	ctx.Redirect(http.StatusSeeOther, rotationURL(token))
}

func (r *frontendRouter) DeleteRotationUser(ctx *gin.Context) {
	token := ctx.Param("rotationToken")

	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		r.logger.Debug("invalid user id", zap.String("user id", ctx.Param("userId")))
		r.sendToast(ctx, "Unknown user", entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	err = r.rotationService.DeleteUser(ctx.Request.Context(), token, userID)
	if err != nil {
		r.logger.Error("could not remove user from rotation", zap.String("token", token), zap.Int64("user id", userID), zap.Error(err))
		r.sendToast(ctx, services.UserMessage(err), entities.ToastDanger)
		ctx.Redirect(http.StatusSeeOther, rotationURL(token))
		return
	}

	r.sendToast(ctx, "User removed from the rotation", entities.ToastSuccess)
	ctx.Redirect(http.StatusSeeOther, rotationURL(token))
}
