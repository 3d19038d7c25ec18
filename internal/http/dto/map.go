package dto

import (
	"errors"
	"time"

	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// ToCommand преобразует CreateSaveLinkRequest в команду use case
func (r CreateSaveLinkRequest) ToCommand() issvc.IssueCommand {
	return issvc.IssueCommand{
		ClassSuffix:  r.ClassSuffix,
		ObjectSuffix: r.ObjectSuffix,
		Ticket:       r.Ticket,
	}
}

// FromIssueResult формирует ответ по результату use case
func FromIssueResult(res issvc.IssueResult) CreateSaveLinkResponse {
	return CreateSaveLinkResponse{
		URL:            res.URL,
		ObjectID:       res.ObjectID,
		ClassID:        res.ClassID,
		ObjectInserted: res.ObjectInserted,
		IssuedAt:       res.IssuedAt.Format(time.RFC3339),
		Warnings:       FromWarnings(res.Warnings),
	}
}

func FromEnsureResult(res issvc.EnsureResult) EnsureClassResponse {
	return EnsureClassResponse{ClassID: res.ID, Created: res.Created, Warnings: FromWarnings(res.Warnings)}
}

// ToExistingObjects переводит объекты запроса по типам в ExistingObjects сервиса
func (r ExistingLinkRequest) ToExistingObjects() issvc.ExistingObjects {
	out := make(issvc.ExistingObjects, len(r.Objects))
	for kind, ref := range r.Objects {
		out[kind] = issvc.ObjectRef{ObjectSuffix: ref.ObjectSuffix, ClassSuffix: ref.ClassSuffix}
	}
	return out
}

func FromLinkResult(res issvc.LinkResult) ExistingLinkResponse {
	return ExistingLinkResponse{URL: res.URL, Kinds: res.Kinds, IssuedAt: res.IssuedAt.Format(time.RFC3339)}
}

// FromWarnings — код реестра выносится отдельно, если он есть
func FromWarnings(ws []issvc.Warning) []WarningDTO {
	out := make([]WarningDTO, 0, len(ws))
	for _, w := range ws {
		d := WarningDTO{Op: w.Op, ResourceID: w.ResourceID, Message: w.Err.Error()}
		var re *issvc.RegistryError
		if errors.As(w.Err, &re) {
			d.Code = re.Code
			d.Message = re.Message
		}
		out = append(out, d)
	}
	return out
}
