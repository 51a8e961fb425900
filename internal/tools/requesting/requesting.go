package requesting

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"bitbucket.org/crgw/flexrates/internal/schema"
)

// supplier error bodies are echoed into messages, but not whole pages of them
const maxErrorBody = 512

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

func RequestErrors(response *http.Response, err error) (*http.Response, *schema.SupplierResponseError) {
	if err != nil {
		if os.IsTimeout(err) {
			e := schema.NewTimeoutError(err.Error())
			return nil, &e
		}

		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	if !isValidResponse(response.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		response.Body.Close()

		message := fmt.Sprintf("supplier returned status code %d", response.StatusCode)
		if text := strings.TrimSpace(string(body)); text != "" {
			message += ": " + text
		}

		e := schema.NewSupplierError(message)
		return nil, &e
	}

	return response, nil
}
