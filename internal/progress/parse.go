package progress

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses a single feed line. Accepted forms, each optionally
// followed by a status message:
//
//	42%        percentage
//	0.42       fraction
//	42/100     count of total
//	[42%] msg  brackets are ignored
//
// A leading non-numeric tag such as yt-dlp's "[download]" is skipped and
// used as the message when nothing follows the number.
// Lines without a leading number are skipped (ok=false).
func ParseLine(line string) (u Update, ok bool) {
	line = strings.TrimSpace(line)
	var tag string
	if strings.HasPrefix(line, "[") {
		if end := strings.Index(line, "]"); end > 0 {
			if _, numeric := parseHead(line[1:end]); !numeric {
				tag = line[1:end]
				line = strings.TrimSpace(line[end+1:])
			}
		}
	}
	if line == "" {
		return Update{}, false
	}
	head, msg, _ := strings.Cut(line, " ")
	p, ok := parseHead(strings.Trim(head, "[]"))
	if !ok {
		return Update{}, false
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = tag
	}
	return Update{Percent: p, Message: msg}, true
}

func parseHead(head string) (float64, bool) {
	switch {
	case strings.HasSuffix(head, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(head, "%"), 64)
		if err != nil {
			return 0, false
		}
		return v / 100, true
	case strings.Contains(head, "/"):
		n, d, _ := strings.Cut(head, "/")
		num, err1 := strconv.ParseFloat(n, 64)
		den, err2 := strconv.ParseFloat(d, 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false
		}
		return num / den, true
	default:
		v, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

// Scan reads r line by line, reporting every parsed update, until EOF or
// ctx is cancelled. Done is always reported exactly once.
func Scan(ctx context.Context, r io.Reader, rep Reporter) error {
	sc := bufio.NewScanner(r)
	lines := 0
	lineCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lineCh)
		for sc.Scan() {
			select {
			case lineCh <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errCh <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			err := ctx.Err()
			rep.Done(Result{Lines: lines, Err: err})
			return err
		case line, open := <-lineCh:
			if !open {
				var err error
				select {
				case err = <-errCh:
				default:
					err = ctx.Err()
				}
				if errors.Is(err, io.EOF) {
					err = nil
				}
				rep.Done(Result{Lines: lines, Err: err})
				return err
			}
			lines++
			if u, ok := ParseLine(line); ok {
				rep.Update(u)
			}
		}
	}
}
