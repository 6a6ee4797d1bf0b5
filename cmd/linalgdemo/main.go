// Command linalgdemo prints the matrices for a perspective camera.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/linalg"
	"github.com/gogpu/linalg/gpu"
)

func main() {
	var (
		eye     = flag.String("eye", "0,2,5", "camera position x,y,z")
		center  = flag.String("center", "0,0,0", "point the camera looks at")
		up      = flag.String("up", "0,1,0", "up direction")
		fovy    = flag.Float64("fovy", 60, "vertical field of view in degrees")
		aspect  = flag.Float64("aspect", 16.0/9.0, "viewport width / height")
		near    = flag.Float64("near", 0.1, "near clip plane distance")
		far     = flag.Float64("far", 100, "far clip plane distance")
		lang    = flag.String("lang", "en", "BCP 47 language tag for number formatting")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		linalg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	eyeV, err := parseVec3(*eye)
	if err != nil {
		log.Fatalf("-eye: %v", err)
	}
	centerV, err := parseVec3(*center)
	if err != nil {
		log.Fatalf("-center: %v", err)
	}
	upV, err := parseVec3(*up)
	if err != nil {
		log.Fatalf("-up: %v", err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("-lang: %v", err)
	}
	p := message.NewPrinter(tag)

	var tr gpu.Transforms
	tr.Model.Identity()
	tr.Projection.Perspective(float32(*fovy), float32(*aspect), float32(*near), float32(*far))
	tr.View.LookAtVec(&eyeV, &centerV, &upV)
	mvp := tr.MVP()

	printMat(p, "projection", &tr.Projection)
	printMat(p, "view", &tr.View)
	printMat(p, "mvp", &mvp)

	// Invert in double precision to keep round-off out of the printout.
	var mvpd, inv linalg.Mat4d
	linalg.ConvertMat4(&mvpd, &mvp)
	if inv.Invert(&mvpd) {
		printMat(p, "inverse mvp", &inv)
	} else {
		fmt.Println("inverse mvp: matrix is singular")
	}

	var origin linalg.Vec4f
	origin.Transform(&mvp, &linalg.Vec4f{0, 0, 0, 1})
	fmt.Printf("origin in clip space: %s\n", origin.Sprint(p))
	origin.Homogenize(&origin)
	fmt.Printf("origin in NDC:        %s\n", origin.Sprint(p))

	shader, err := gpu.CompileTransformShader()
	if err != nil {
		log.Fatalf("Failed to compile shader: %v", err)
	}
	log.Printf("uniform block %d bytes, shader %d SPIR-V words\n", len(tr.Bytes()), len(shader))
}

type sprinter interface {
	Sprint(p *message.Printer) string
}

func printMat(p *message.Printer, name string, m sprinter) {
	fmt.Printf("%s %s\n\n", name, m.Sprint(p))
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (linalg.Vec3f, error) {
	var v linalg.Vec3f
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want 3 comma-separated numbers, got %q", s)
	}
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}
