// Package hostlib holds the authoritative Processing global runtime
// member list (spec §6: "Global runtime member list") and the registry
// of plug-in libraries whose exports extend it.
package hostlib

// Globals is the fixed set of Processing API names the resolver treats
// as host-runtime members (spec §6): color/graphics/math/IO built-ins
// plus the __* helpers the method-rewrite pass introduces (spec §4.5).
// It must match the host runtime exactly, since the renderer decides
// "-> $p.name" purely from set membership.
var Globals = buildGlobals()

func buildGlobals() map[string]bool {
	names := []string{
		// drawing / shape state
		"background", "fill", "noFill", "stroke", "noStroke", "strokeWeight",
		"strokeCap", "strokeJoin", "smooth", "noSmooth", "colorMode",
		"ellipseMode", "rectMode", "imageMode", "shapeMode", "blendMode",
		// primitives
		"point", "line", "triangle", "quad", "rect", "ellipse", "arc", "bezier",
		"curve", "box", "sphere",
		// transform / matrix
		"pushMatrix", "popMatrix", "pushStyle", "popStyle", "resetMatrix",
		"translate", "rotate", "rotateX", "rotateY", "rotateZ", "scale",
		"shearX", "shearY", "applyMatrix", "printMatrix",
		// color
		"color", "red", "green", "blue", "alpha", "hue", "saturation",
		"brightness", "lerpColor",
		// image / pixels
		"loadImage", "image", "createImage", "get", "set", "save", "tint",
		"noTint", "loadPixels", "updatePixels", "copy", "blend",
		// typography
		"loadFont", "createFont", "textFont", "text", "textAlign", "textSize",
		"textWidth", "textLeading", "textStyle", "textAscent", "textDescent",
		// math
		"abs", "ceil", "floor", "round", "sqrt", "sq", "pow", "exp", "log",
		"max", "min", "constrain", "map", "norm", "lerp", "dist", "mag",
		"sin", "cos", "tan", "asin", "acos", "atan", "atan2", "radians",
		"degrees", "random", "randomSeed", "randomGaussian", "noise",
		"noiseSeed", "noiseDetail",
		// string / array utils
		"str", "trim", "split", "splitTokens", "join", "match", "matchAll",
		"nf", "nfc", "nfp", "nfs", "append", "shorten", "concat", "expand",
		"arrayCopy", "reverse", "sort", "subset", "binary", "unbinary",
		"hex", "unhex",
		// IO
		"loadStrings", "saveStrings", "loadBytes", "saveBytes", "loadJSONObject",
		"loadJSONArray", "saveJSONObject", "saveJSONArray", "loadTable",
		"saveTable", "loadXML", "saveXML", "print", "println",
		// sketch lifecycle / input
		"setup", "draw", "size", "frameRate", "noLoop", "loop", "redraw",
		"exit", "cursor", "noCursor", "millis", "second", "minute", "hour",
		"day", "month", "year",
		"keyPressed", "keyReleased", "keyTyped", "mousePressed",
		"mouseReleased", "mouseDragged", "mouseMoved", "mouseClicked",
		"mouseWheel",
		// bare-name rename helpers introduced by the expression transformer
		"__frameRate", "__keyPressed", "__mousePressed",
		// cast/parse/method-rename helpers introduced by stage 6
		"__int_cast", "parseBoolean", "parseByte", "parseChar", "parseFloat",
		"parseInt",
		"__replace", "__replaceAll", "__replaceFirst", "__contains",
		"__equals", "__equalsIgnoreCase", "__hashCode", "__toCharArray",
		"__printStackTrace", "__split", "__startsWith", "__endsWith",
		"__codePointAt", "__matches", "__instanceof",
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// PConstants is the nested name set referenced by spec §6's
// defaultScope ("a read-only name set including a nested PConstants
// name set"): Processing's numeric/mode constants.
var PConstants = buildPConstants()

func buildPConstants() map[string]bool {
	names := []string{
		"PI", "HALF_PI", "QUARTER_PI", "TWO_PI", "TAU",
		"RGB", "HSB", "ALPHA",
		"CORNER", "CORNERS", "CENTER", "RADIUS",
		"CLOSE", "OPEN",
		"ROUND", "SQUARE", "PROJECT", "MITER", "BEVEL",
		"LEFT", "RIGHT", "TOP", "BOTTOM", "BASELINE",
		"POINTS", "LINES", "TRIANGLES", "TRIANGLE_FAN", "TRIANGLE_STRIP",
		"QUADS", "QUAD_STRIP",
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Library is a plug-in registered in hostLib.lib (spec §6): its Exports
// are names added to the global set when the library is declared in
// use.
type Library struct {
	Name    string   `json:"name"`
	Exports []string `json:"exports"`
}
