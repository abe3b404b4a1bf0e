package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"leetdeck/internal/common"
	"leetdeck/internal/domain/model"
)

// profileQuery fetches the matched user's profile, submission statistics and
// accepted-question progress as sibling root fields of a single request. The
// recent submission list (limit 1) only confirms the account is active; it is
// stored but never displayed. The username is bound through query variables
// and never spliced into the document text.
const profileQuery = `query userProfile($username: String!, $limit: Int!, $userSlug: String!) {
  matchedUser(username: $username) {
    username
    contributions { points }
    profile {
      realName
      starRating
      userAvatar
      ranking
    }
    submitStats {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
    badges { id icon }
    activeBadge { id }
  }
  recentSubmissionList(username: $username, limit: $limit) {
    timestamp
  }
  userProfileUserQuestionProgressV2(userSlug: $userSlug) {
    numAcceptedQuestions { count difficulty }
  }
}`

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLResponse struct {
	Data   *responseData  `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

// responseData mirrors model.UserRecord but keeps matchedUser nullable so an
// unknown username can be told apart from a decoding failure.
type responseData struct {
	MatchedUser          *model.MatchedUser       `json:"matchedUser"`
	RecentSubmissionList []model.RecentSubmission `json:"recentSubmissionList"`
	QuestionProgress     model.QuestionProgress   `json:"userProfileUserQuestionProgressV2"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// FetchUserRecord issues one POST for the given username and returns the raw
// data object on success. Transport errors, non-2xx statuses, malformed
// bodies, GraphQL errors and a null matchedUser all collapse into
// common.ErrFetchFailed.
func (c *Client) FetchUserRecord(ctx context.Context, username string) (*model.UserRecord, error) {
	reqBody, err := json.Marshal(graphQLRequest{
		Query: profileQuery,
		Variables: map[string]interface{}{
			"username": username,
			"limit":    1,
			"userSlug": username,
		},
	})
	if err != nil {
		return nil, common.Errorf("marshal profile query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, common.Errorf("build profile request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, common.Errorf("post profile query: %v: %w", err, common.ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, common.Errorf("profile query returned status %d: %w", resp.StatusCode, common.ErrFetchFailed)
	}

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, common.Errorf("decode profile response: %v: %w", err, common.ErrFetchFailed)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, common.Errorf("profile query error: %s: %w", gqlResp.Errors[0].Message, common.ErrFetchFailed)
	}
	if gqlResp.Data == nil || gqlResp.Data.MatchedUser == nil {
		return nil, common.Errorf("no matched user for %q: %w", username, common.ErrFetchFailed)
	}

	return &model.UserRecord{
		MatchedUser:          *gqlResp.Data.MatchedUser,
		RecentSubmissionList: gqlResp.Data.RecentSubmissionList,
		QuestionProgress:     gqlResp.Data.QuestionProgress,
	}, nil
}
