package driver

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/labquad/integral/quadrature"
	"github.com/labquad/integral/utils"
)

// Labels are the output labels of each rule, in printing order.
var Labels = []struct {
	Method quadrature.Method
	Label  string
}{
	{quadrature.MethodLeftRectangle, "lev priam="},
	{quadrature.MethodMiddleRectangle, "sr priam="},
	{quadrature.MethodRightRectangle, "prav priam="},
	{quadrature.MethodTrapezoidal, "trapeciy="},
	{quadrature.MethodSimpson, "Simpson="},
	{quadrature.MethodNewton38, "Newton"},
}

// Session is a single run of the console program.
type Session struct {
	cfg    Config
	stdout io.Writer
	stderr io.Writer
	log    logrus.FieldLogger
}

// NewSession creates a new Session printing results on stdout and errors on stderr.
func NewSession(cfg Config, stdout, stderr io.Writer, log logrus.FieldLogger) *Session {
	return &Session{
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
		log:    log,
	}
}

// Run reads a table from r and prints its rendering followed by one line
// per rule. Output is written as it is computed, so a failing rule stops
// the session after the lines already printed.
//
// Any error is reported on stderr as "Error: <message>" and returned; the
// caller is not expected to do anything else with it.
func (s *Session) Run(r io.Reader) (err error) {
	if err = s.run(r); err != nil {
		s.log.WithError(err).Debug("session aborted")
		fmt.Fprintf(s.stderr, "Error: %s\n", err)
	}
	return
}

func (s *Session) run(r io.Reader) (err error) {

	integral, err := ReadTable(r)
	if err != nil {
		return
	}

	s.log.WithField("points", integral.Len()).Debug("table loaded")

	if !integral.IsIncreasing() {
		s.log.Warn("points are not strictly increasing, results are meaningless")
	}

	if _, err = io.WriteString(s.stdout, integral.String()); err != nil {
		return
	}

	if s.cfg.Summary {
		if summary, serr := integral.Summary(); serr != nil {
			s.log.WithError(serr).Warn("skipping summary")
		} else if _, err = fmt.Fprintf(s.stdout, "summary %s\n", summary); err != nil {
			return
		}
	}

	if s.cfg.Digest {
		var digest []byte
		if digest, err = integral.Digest(); err != nil {
			return
		}
		if _, err = fmt.Fprintf(s.stdout, "digest %s\n", hex.EncodeToString(digest)); err != nil {
			return
		}
	}

	for _, l := range Labels {

		if l.Method == quadrature.MethodMiddleRectangle && !s.cfg.Middle {
			continue
		}

		var value float64
		if value, err = integral.Evaluate(l.Method); err != nil {
			return
		}

		s.log.WithFields(logrus.Fields{
			"method": l.Method.String(),
			"value":  value,
		}).Debug("rule evaluated")

		if _, err = fmt.Fprintf(s.stdout, "%s %s\n", l.Label, utils.FormatFloat(utils.Round(value, s.cfg.Places))); err != nil {
			return
		}
	}

	return nil
}
